// Package domain runs catalog suites and coordinates their display and storage.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"myspec.dev/pkg/myspec/internal/adapter"
	"myspec.dev/pkg/myspec/internal/controller"
	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

var (
	// ErrExamplesFailed is returned by Run when at least one example failed.
	ErrExamplesFailed = errors.New("examples failed")
	// ErrNoSuites is returned when the selection matches no suite.
	ErrNoSuites = errors.New("no suites selected")
)

// SuiteSource supplies the suites a workflow can run.
type SuiteSource interface {
	Suites() []m.Suite
	Lookup(name string) (m.Suite, error)
}

// SelectArgs chooses suites by name and exclusion patterns.
type SelectArgs struct {
	Suites  []string
	Exclude []string
}

// ListArgs holds the arguments for List.
type ListArgs struct {
	SelectArgs
}

// RunArgs holds the arguments for Run.
type RunArgs struct {
	SelectArgs
	Reports m.Path
	Save    bool
	Format  controller.Format
}

// ViewArgs holds the arguments for View.
type ViewArgs struct {
	Reports m.Path
}

// Workflow lists, runs and views suites.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Run(ctx context.Context, args RunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	suites SuiteSource
	store  adapter.ReportStore
	ui     controller.UI
	now    func() time.Time
}

// NewWorkflow constructs a Workflow.
func NewWorkflow(suites SuiteSource, store adapter.ReportStore, ui controller.UI) Workflow {
	return &workflow{
		suites: suites,
		store:  store,
		ui:     ui,
		now:    time.Now,
	}
}

// List shows the selected suites with their example counts.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	suites, err := w.selectSuites(args.SelectArgs)
	if err != nil {
		return err
	}

	listings := make([]m.SuiteListing, 0, len(suites))

	for _, suite := range suites {
		if err := ctx.Err(); err != nil {
			return err
		}

		count, err := countExamples(suite)
		if err != nil {
			return err
		}

		listings = append(listings, m.SuiteListing{Name: suite.Name, Summary: suite.Summary, Examples: count})
	}

	return w.ui.DisplaySuites(ctx, listings)
}

// Run executes the selected suites one after another.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	suites, err := w.selectSuites(args.SelectArgs)
	if err != nil {
		return err
	}

	format := args.Format
	if format == "" {
		format = controller.FormatDocumentation
	}

	if err := w.ui.Start(ctx, controller.WithFormat(format)); err != nil {
		return err
	}
	defer w.ui.Close(ctx)

	started := w.now()
	report := m.RunReport{Version: m.CurrentReportVersion, StartedAt: started}

	var failures []myspec.Report

	for _, suite := range suites {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, failed, err := w.runSuite(ctx, suite)
		if err != nil {
			return err
		}

		report.Suites = append(report.Suites, result)
		failures = append(failures, failed...)
	}

	report.Duration = w.now().Sub(started)

	summary := m.Summarize(report.Suites...)
	summary.Duration = report.Duration

	if err := w.ui.DisplaySummary(ctx, summary, failures); err != nil {
		return err
	}

	if args.Save {
		if err := w.store.SaveReport(ctx, args.Reports, report); err != nil {
			return err
		}
	}

	slog.Info("run finished", "suites", len(report.Suites), "examples", summary.Examples,
		"failed", summary.Failed, "pending", summary.Pending, "duration", report.Duration)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d examples: %w", summary.Failed, summary.Examples, ErrExamplesFailed)
	}

	return nil
}

// View shows the report saved in args.Reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	report, err := w.store.LoadReport(ctx, args.Reports)
	if err != nil {
		return err
	}

	return w.ui.DisplayReport(ctx, report)
}

func (w *workflow) runSuite(ctx context.Context, suite m.Suite) (m.SuiteResult, []myspec.Report, error) {
	w.ui.DisplaySuiteStarted(ctx, suite)

	rec := &recorder{}
	logger := slog.Default().With("suite", suite.Name)

	err := myspec.Describe(suite.Description, suite.Body,
		myspec.WithReporter(myspec.MultiReporter(w.ui, rec)),
		myspec.WithLogger(logger),
	)
	if err != nil && !rec.explains(err) {
		logger.Error("suite aborted", "error", err)
		return m.SuiteResult{}, nil, fmt.Errorf("suite %q: %w", suite.Name, err)
	}

	return m.SuiteResult{Name: suite.Name, Examples: rec.results}, rec.failures, nil
}

// selectSuites resolves names (all suites when empty) and drops those whose
// name matches an exclude pattern.
func (w *workflow) selectSuites(args SelectArgs) ([]m.Suite, error) {
	excludes := make([]*regexp.Regexp, 0, len(args.Exclude))

	for _, pattern := range args.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	var candidates []m.Suite

	if len(args.Suites) == 0 {
		candidates = w.suites.Suites()
	} else {
		for _, name := range args.Suites {
			suite, err := w.suites.Lookup(name)
			if err != nil {
				return nil, err
			}

			candidates = append(candidates, suite)
		}
	}

	selected := make([]m.Suite, 0, len(candidates))

	for _, suite := range candidates {
		if matchesAny(excludes, suite.Name) {
			slog.Debug("excluding suite", "suite", suite.Name)
			continue
		}

		selected = append(selected, suite)
	}

	if len(selected) == 0 {
		return nil, ErrNoSuites
	}

	return selected, nil
}

func matchesAny(patterns []*regexp.Regexp, name string) bool {
	for _, re := range patterns {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}

// countExamples runs the suite against a counting reporter.
func countExamples(suite m.Suite) (int, error) {
	count := 0

	err := myspec.Describe(suite.Description, suite.Body,
		myspec.WithReporter(myspec.ReporterFuncs{Finished: func(myspec.Report) { count++ }}),
	)
	if err != nil && (errors.Is(err, myspec.ErrInvalidState) || errors.Is(err, myspec.ErrInvalidDefinition)) {
		return 0, fmt.Errorf("suite %q: %w", suite.Name, err)
	}

	return count, nil
}
