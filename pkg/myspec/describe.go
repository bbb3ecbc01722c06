// Package myspec is a small behaviour-driven testing DSL. Describe builds a tree
// of example groups; It runs examples immediately with the before hooks of every
// enclosing group, outermost first, and members defined with Def are visible
// only to examples inside the defining group.
package myspec

import (
	"errors"
	"log/slog"
	"os"
	"runtime/debug"
	"time"
)

// Option configures a top-level Describe call.
type Option func(*config)

type config struct {
	reporter Reporter
	logger   *slog.Logger
}

// WithReporter sets the report sink. The default writes descriptions to stdout.
func WithReporter(r Reporter) Option {
	return func(c *config) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithLogger sets the logger used for lifecycle records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Describe creates a root group, evaluates body against it and discards it.
//
// The returned error joins one *ExampleError per failed example. Misuse of the
// DSL inside the call (see ErrInvalidState and ErrInvalidDefinition) stops the
// run and is returned as is.
func Describe(description string, body Body, opts ...Option) (err error) {
	cfg := config{
		reporter: PlainReporter(os.Stdout),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{reporter: cfg.reporter, logger: cfg.logger}

	defer func() {
		if v := recover(); v != nil {
			usageErr, ok := isUsageError(v)
			if !ok {
				panic(v)
			}

			r.logger.Debug("describe aborted", "description", description, "error", usageErr)
			err = usageErr
		}
	}()

	root := newGroup(r, nil, description)
	root.evaluate(body)

	return errors.Join(r.failures...)
}

// runner holds the state shared by one tree of groups.
type runner struct {
	reporter Reporter
	logger   *slog.Logger
	failures []error
	running  *Example
}

func (r *runner) run(g *ExampleGroup, description string, body ExampleFunc) {
	ex := newExample(g, description)
	info := ex.Info()

	r.running = ex
	defer func() {
		ex.finished = true
		r.running = nil
	}()

	start := time.Now()
	r.logger.Debug("running example", "example", info.FullDescription())

	err := r.runBefore(g, ex)
	r.reporter.ExampleStarted(info)

	status := StatusPassed
	if err == nil {
		if body == nil {
			status = StatusPending
		} else {
			err = protect(func() error { return body(ex) })
		}
	}

	if afterErr := r.runAfter(g, ex); afterErr != nil {
		err = errors.Join(err, afterErr)
	}

	if err != nil {
		status = StatusFailed
		r.failures = append(r.failures, &ExampleError{Example: info.FullDescription(), Err: err})
	}

	report := Report{ExampleInfo: info, Status: status, Err: err, Duration: time.Since(start)}
	r.logger.Debug("example finished", "example", info.FullDescription(), "status", status, "duration", report.Duration)
	r.reporter.ExampleFinished(report)
}

// runBefore runs the before hooks outermost first and stops at the first failure.
func (r *runner) runBefore(g *ExampleGroup, ex *Example) error {
	for _, hook := range g.beforeChain() {
		if err := protect(func() error { return hook(ex) }); err != nil {
			return err
		}
	}

	return nil
}

// runAfter runs every after hook, innermost first, and joins their failures.
func (r *runner) runAfter(g *ExampleGroup, ex *Example) error {
	var errs []error

	for _, hook := range g.afterChain() {
		if err := protect(func() error { return hook(ex) }); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// protect turns a panic in fn into a *PanicError. DSL misuse keeps panicking so
// that the enclosing Describe can abort.
func protect(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			if _, ok := isUsageError(v); ok {
				panic(v)
			}

			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()

	return fn()
}
