package main

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/urfave/cli/v2"

	"github.com/frenofclaw/ledger"
	audithook "github.com/frenofclaw/ledger/audit_hook"
	"github.com/frenofclaw/ledger/observability"
	"github.com/frenofclaw/ledger/store/memory"
)

// Demo runs the scripted tour.
var Demo = cli.Command{
	Action: demo,
	Name:   "demo",
	Usage:  "submit, tip, vote, and print the resulting ledger state",
}

func demo(c *cli.Context) error {
	logger := newLogger(c.Bool("verbose"))

	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	metrics := newDemoMetrics()
	auditor := audithook.New(audithook.RecorderFunc(
		func(_ context.Context, ev *audithook.AuditEvent) error {
			logger.Debug("audit", "action", ev.Action, "resource_id", ev.ResourceID)
			return nil
		},
	), audithook.WithLogger(logger))

	l, err := ledger.New(memory.New(),
		ledger.WithLogger(logger),
		ledger.WithConfig(cfg),
		ledger.WithPlugin(observability.NewMetricsExtension(metrics)),
		ledger.WithPlugin(auditor),
	)
	if err != nil {
		return err
	}
	defer l.Close()

	ctx := c.Context
	goLang := l.HashContent([]byte("go"))
	pyLang := l.HashContent([]byte("python"))

	first, err := l.SubmitSnippet(ctx, "alice", []byte(`fmt.Println("hello")`), goLang, "hello world")
	if err != nil {
		return err
	}
	second, err := l.SubmitSnippet(ctx, "bob", []byte(`print("hi")`), pyLang, "python greeting")
	if err != nil {
		return err
	}

	if err := l.TipSnippet(ctx, first, "bob", ledger.NewAmount(1000)); err != nil {
		return err
	}
	if err := l.UpvoteSnippet(ctx, first, "bob"); err != nil {
		return err
	}
	if err := l.UpvoteSnippet(ctx, second, "alice"); err != nil {
		return err
	}
	if err := l.DownvoteSnippet(ctx, second, "carol"); err != nil {
		return err
	}

	hintID, err := l.RequestHint(ctx, "carol", l.HashContent([]byte("generics")), first)
	if err != nil {
		return err
	}
	if err := l.FulfillHint(ctx, hintID, cfg.Fulfiller); err != nil {
		return err
	}

	if err := l.AwardBadge(ctx, "alice", 0, cfg.Curator); err != nil {
		return err
	}

	withdrawn, err := l.WithdrawTips(ctx, "alice")
	if err != nil {
		return err
	}

	fmt.Printf("alice withdrew:   %s\n", withdrawn)
	fmt.Printf("alice reputation: %d\n", l.ReputationOf(ctx, "alice"))
	fmt.Printf("bob reputation:   %d\n", l.ReputationOf(ctx, "bob"))
	fmt.Printf("alice badges:     %08b\n", l.BadgesOf(ctx, "alice"))
	fmt.Printf("stats:            %s\n", l.Stats(ctx))
	fmt.Printf("hooks fired:      %d\n", metrics.calls.Load())

	fmt.Println("event log:")
	for _, rec := range l.Events() {
		fmt.Printf("  %4d %-22s %s\n", rec.Seq, rec.Payload.Kind(), rec.ID)
	}
	return nil
}

// demoMetrics is a MetricFactory that just counts hook invocations.
type demoMetrics struct {
	calls atomic.Int64
}

func newDemoMetrics() *demoMetrics { return &demoMetrics{} }

func (d *demoMetrics) Counter(string) observability.Counter     { return (*demoCounter)(d) }
func (d *demoMetrics) Histogram(string) observability.Histogram { return (*demoCounter)(d) }

type demoCounter demoMetrics

func (c *demoCounter) Inc()            { c.calls.Add(1) }
func (c *demoCounter) Add(float64)     { c.calls.Add(1) }
func (c *demoCounter) Observe(float64) { c.calls.Add(1) }
