package inject

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/pdebug"
	"github.com/pkg/errors"
)

// Options configures a Deliverer.
type Options struct {
	Source Source
	Output io.Writer
	Logger *slog.Logger
	Delay  time.Duration
}

// Deliverer posts prepared events to an ordered list of pids.
type Deliverer struct {
	source Source
	out    io.Writer
	logger *slog.Logger
	delay  time.Duration
}

// Failure describes an event that could not be constructed or posted.
type Failure struct {
	PID   int
	Event Event
	Err   error
}

// Report summarises a delivery batch.
type Report struct {
	BatchID   string
	Targets   int
	Events    int
	Attempts  int
	Delivered int
	Skipped   []Failure
	Failures  []Failure
}

// sleep is swapped in tests.
var sleep = time.Sleep

// NewDeliverer validates options and constructs a Deliverer.
func NewDeliverer(opts Options) (*Deliverer, error) {
	if opts.Source == nil {
		return nil, errors.New("event source must not be nil")
	}
	if opts.Delay < 0 {
		return nil, errors.New("delay must not be negative")
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Deliverer{
		source: opts.Source,
		out:    out,
		logger: logger,
		delay:  opts.Delay,
	}, nil
}

// Deliver constructs every event once, then for each pid in order announces
// the target on the output and posts all constructed events to it. Events the
// source fails to construct are skipped for every target; post failures are
// recorded and never stop the batch. Only cancellation and output errors are
// returned.
func (d *Deliverer) Deliver(ctx context.Context, pids []int, events []Event) (Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if pdebug.Enabled {
		g := pdebug.Marker("Deliverer.Deliver %d targets, %d events", len(pids), len(events))
		defer g.End()
	}

	report := Report{
		BatchID: uuid.NewString(),
		Targets: len(pids),
		Events:  len(events),
	}
	logger := d.logger.With("batch_id", report.BatchID)

	prepared := make([]Prepared, 0, len(events))
	defer func() {
		for _, p := range prepared {
			p.Release()
		}
	}()
	for _, ev := range events {
		p, err := d.source.Prepare(ev)
		if err != nil {
			logger.Warn("skipping event", "event", fmt.Sprint(ev), "error", err)
			report.Skipped = append(report.Skipped, Failure{Event: ev, Err: err})
			continue
		}
		prepared = append(prepared, p)
	}

	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if _, err := fmt.Fprintln(d.out, "sending to pid: ", pid); err != nil {
			return report, errors.Wrap(err, "write target announcement")
		}
		for i, p := range prepared {
			if i > 0 && d.delay > 0 {
				sleep(d.delay)
			}
			report.Attempts++
			if err := p.PostToPID(pid); err != nil {
				logger.Debug("post failed", "pid", pid, "event", fmt.Sprint(p.Event()), "error", err)
				report.Failures = append(report.Failures, Failure{PID: pid, Event: p.Event(), Err: err})
				continue
			}
			report.Delivered++
		}
	}

	logger.Info("delivery finished",
		"targets", report.Targets,
		"attempts", report.Attempts,
		"delivered", report.Delivered,
		"skipped", len(report.Skipped),
		"failed", len(report.Failures),
	)
	return report, nil
}
