package cmd

import (
	"context"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
)

type clickCommand struct {
	root *RootCommand

	PIDs   []int   `short:"p" long:"pid" value-name:"PID" description:"Target process id; repeatable, overrides targets.pids"`
	X      float64 `long:"x" description:"Window-relative x coordinate"`
	Y      float64 `long:"y" description:"Window-relative y coordinate"`
	Window int     `long:"window" value-name:"ID" description:"Window number the click is addressed to"`
	DryRun bool    `long:"dry-run" description:"Record posts instead of delivering them"`
}

func (c *clickCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("click: unexpected arguments %v", args)
	}
	if c.Window < 0 {
		return errors.New("click: --window must not be negative")
	}
	app, err := c.root.ensureAppContext()
	if err != nil {
		return err
	}

	pids := app.Config.Targets.PIDs
	if len(c.PIDs) > 0 {
		pids = c.PIDs
	}
	return c.root.deliver(context.Background(), app, deliveryPlan{
		pids:   pids,
		events: inject.Click(c.X, c.Y, c.Window),
		dryRun: app.Config.Delivery.DryRun || c.DryRun,
	})
}
