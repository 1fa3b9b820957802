package cmd

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/offlinefirst/keypost/pkg/inject"
	"github.com/offlinefirst/keypost/pkg/permissions"
)

var (
	newSource   = inject.NewSource
	newRecorder = inject.NewRecorder
	probePID    = permissions.ProbeProcess
)

type deliveryPlan struct {
	pids   []int
	events []inject.Event
	delay  time.Duration
	dryRun bool
	check  bool
}

// deliver opens the event source, posts the plan and releases the source.
// Post failures are logged by the deliverer and never returned.
func (rc *RootCommand) deliver(ctx context.Context, app *AppContext, plan deliveryPlan) error {
	logger := app.Logger

	if plan.check {
		for _, pid := range plan.pids {
			if probe := probePID(pid); probe.State != permissions.ProcessRunning {
				logger.Warn("target may not receive events", "pid", pid, "state", string(probe.State), "detail", probe.Message)
			}
		}
	}

	var (
		source   inject.Source
		recorder *inject.Recorder
	)
	if plan.dryRun {
		recorder = newRecorder()
		source = recorder
	} else {
		src, err := newSource()
		if err != nil {
			return errors.Wrap(err, "open event source (use --dry-run to preview)")
		}
		source = src
	}
	defer source.Close()

	deliverer, err := inject.NewDeliverer(inject.Options{
		Source: source,
		Output: rc.stdout,
		Logger: logger,
		Delay:  plan.delay,
	})
	if err != nil {
		return err
	}

	report, err := deliverer.Deliver(ctx, plan.pids, plan.events)
	if err != nil {
		return err
	}

	if recorder != nil {
		for _, d := range recorder.Deliveries() {
			logger.Debug("dry run post", "batch_id", report.BatchID, "pid", d.PID, "event", d.Event.String())
		}
	}
	return nil
}
