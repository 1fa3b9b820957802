package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/internal/buildinfo"
	"github.com/offlinefirst/keypost/pkg/config"
	"github.com/offlinefirst/keypost/pkg/logging"
)

// GlobalOptions are accepted before any subcommand.
type GlobalOptions struct {
	ConfigPath string `long:"config" value-name:"FILE" description:"Path to config file (default: ./keypost.yaml if present)"`
	LogLevel   string `long:"log-level" value-name:"LEVEL" description:"Override log level (debug, info, warn, error)"`
	LogFormat  string `long:"log-format" value-name:"FORMAT" description:"Override log output format (json, console)"`
}

// AppContext exposes lazily initialised configuration and logging facilities.
type AppContext struct {
	Config config.Config
	Logger *slog.Logger
}

type RootCommand struct {
	globals GlobalOptions
	parser  *flags.Parser
	send    *sendCommand
	stdout  io.Writer
	stderr  io.Writer
	appCtx  *AppContext
}

// NewRootCommand constructs the CLI dispatcher writing to the process streams.
func NewRootCommand() *RootCommand {
	return newRootCommand(os.Stdout, os.Stderr)
}

func newRootCommand(stdout, stderr io.Writer) *RootCommand {
	rc := &RootCommand{stdout: stdout, stderr: stderr}
	rc.parser = flags.NewParser(&rc.globals, flags.HelpFlag|flags.PassDoubleDash)
	rc.parser.Name = "keypost"
	rc.parser.ShortDescription = "post synthetic key events to processes"
	rc.parser.SubcommandsOptional = true

	rc.send = &sendCommand{root: rc}
	rc.register("send", "Post the configured key sequence to target processes", rc.send)
	rc.register("click", "Post a left mouse click to target processes", &clickCommand{root: rc})
	rc.register("doctor", "Report posting support, accessibility trust and target liveness", &doctorCommand{root: rc})
	rc.register("keys", "List known virtual key names", &keysCommand{root: rc})
	rc.register("version", "Print the CLI version information", &versionCommand{root: rc})
	return rc
}

func (rc *RootCommand) register(name, description string, data flags.Commander) {
	if _, err := rc.parser.AddCommand(name, description, description, data); err != nil {
		panic(fmt.Sprintf("register command %q: %v", name, err))
	}
}

// Execute parses global flags and dispatches to a subcommand. Without a
// subcommand it behaves like "send".
func (rc *RootCommand) Execute(args []string) error {
	rest, err := rc.parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(rc.stdout, flagsErr.Message)
			return nil
		}
		fmt.Fprintf(rc.stderr, "keypost: %v\n", err)
		return err
	}
	if rc.parser.Active == nil {
		if len(rest) > 0 {
			err := errors.Errorf("unknown command %q", rest[0])
			fmt.Fprintf(rc.stderr, "keypost: %v\n", err)
			return err
		}
		return rc.send.Execute(nil)
	}
	return nil
}

func (rc *RootCommand) ensureAppContext() (*AppContext, error) {
	if rc.appCtx != nil {
		return rc.appCtx, nil
	}

	cfg, err := config.Load(rc.globals.ConfigPath)
	if err != nil {
		return nil, err
	}

	if rc.globals.LogLevel != "" {
		lvl, err := config.NormalizeLogLevel(rc.globals.LogLevel)
		if err != nil {
			return nil, err
		}
		cfg.Logging.Level = lvl
	}
	if rc.globals.LogFormat != "" {
		format, err := config.NormalizeFormat(rc.globals.LogFormat)
		if err != nil {
			return nil, err
		}
		cfg.Logging.Format = format
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: rc.stderr,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded", "source", cfg.Source, "pids", cfg.Targets.PIDs)

	rc.appCtx = &AppContext{Config: cfg, Logger: logger}
	return rc.appCtx, nil
}

func versionString() string {
	return fmt.Sprintf("%s (%s/%s)", buildinfo.Version(), runtimeVersion(), runtimeGOOS())
}

// runtimeVersion is extracted for testability.
var runtimeVersion = func() string { return runtime.Version() }

// runtimeGOOS is extracted for testability.
var runtimeGOOS = func() string { return runtime.GOOS }
