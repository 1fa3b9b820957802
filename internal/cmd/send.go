package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
)

type sendCommand struct {
	root *RootCommand

	PIDs   []int            `short:"p" long:"pid" value-name:"PID" description:"Target process id; repeatable, overrides targets.pids"`
	Keys   []inject.KeyCode `short:"k" long:"key" value-name:"KEY" description:"Chord key name or code; repeatable, overrides keys"`
	Delay  time.Duration    `long:"delay" value-name:"DURATION" description:"Pause between events, overrides delivery.delay_ms"`
	DryRun bool             `long:"dry-run" description:"Record posts instead of delivering them"`
	Check  bool             `long:"check" description:"Warn about targets that are not running"`
}

func (c *sendCommand) Execute(args []string) error {
	if len(args) > 0 {
		return errors.Errorf("send: unexpected arguments %v", args)
	}
	app, err := c.root.ensureAppContext()
	if err != nil {
		return err
	}

	plan, err := c.plan(app)
	if err != nil {
		return err
	}
	app.Logger.Debug("send command invoked", "pids", plan.pids, "events", len(plan.events), "dry_run", plan.dryRun)
	return c.root.deliver(context.Background(), app, plan)
}

func (c *sendCommand) plan(app *AppContext) (deliveryPlan, error) {
	cfg := app.Config
	plan := deliveryPlan{
		pids:   cfg.Targets.PIDs,
		delay:  time.Duration(cfg.Delivery.DelayMillis) * time.Millisecond,
		dryRun: cfg.Delivery.DryRun || c.DryRun,
		check:  c.Check,
	}
	if len(c.PIDs) > 0 {
		plan.pids = c.PIDs
	}
	if c.Delay < 0 {
		return plan, errors.New("send: --delay must not be negative")
	}
	if c.Delay > 0 {
		plan.delay = c.Delay
	}

	if len(c.Keys) > 0 {
		plan.events = inject.Chord(c.Keys...)
		return plan, nil
	}
	events, err := cfg.Events()
	if err != nil {
		return plan, err
	}
	plan.events = events
	return plan, nil
}
