package cmd

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
)

var detectEnvironment = inject.DetectEnvironment

type doctorCommand struct {
	root *RootCommand

	PIDs []int `short:"p" long:"pid" value-name:"PID" description:"Process id to probe; repeatable, overrides targets.pids"`
}

func (c *doctorCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("doctor: unexpected arguments %v", args)
	}
	app, err := c.root.ensureAppContext()
	if err != nil {
		return err
	}
	out := c.root.stdout

	env := detectEnvironment()
	fmt.Fprintf(out, "Version: %s\n", versionString())
	fmt.Fprintf(out, "Config: %s\n", app.Config.Source)
	fmt.Fprintf(out, "Provider: %s (available=%t trusted=%t)\n", env.Provider, env.Available, env.Trusted)
	fmt.Fprintf(out, "Accessibility: %s", env.Permission)
	if env.Message != "" {
		fmt.Fprintf(out, " (%s)", env.Message)
	}
	fmt.Fprintln(out)
	if env.Guidance != "" {
		fmt.Fprintf(out, "  hint: %s\n", env.Guidance)
	}
	if err := env.Err(); err != nil {
		fmt.Fprintf(out, "Status: %v\n", err)
	} else {
		fmt.Fprintln(out, "Status: ready")
	}

	events, err := app.Config.Events()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Events:")
	for _, ev := range events {
		fmt.Fprintf(out, "  - %s\n", ev)
	}

	pids := app.Config.Targets.PIDs
	if len(c.PIDs) > 0 {
		pids = c.PIDs
	}
	fmt.Fprintln(out, "Targets:")
	for _, pid := range pids {
		fmt.Fprintf(out, "  - %s\n", probePID(pid))
	}
	return nil
}
