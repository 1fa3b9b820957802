package buildinfo

import "runtime/debug"

// version is set at link time: -ldflags "-X github.com/offlinefirst/keypost/internal/buildinfo.version=v1.2.3".
var version = "dev"

// SetVersion allows build scripts to override the CLI version information.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Version returns the link-time version, the module version, or the VCS
// revision recorded by the toolchain, in that order.
func Version() string {
	if version != "dev" {
		return version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			return "dev-" + setting.Value[:7]
		}
	}
	return version
}
