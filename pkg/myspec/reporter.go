package myspec

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Status is the outcome of an example.
type Status int

const (
	// StatusPassed means every hook and the body returned without error.
	StatusPassed Status = iota
	// StatusFailed means a hook or the body failed.
	StatusFailed
	// StatusPending means the example had no body and its hooks succeeded.
	StatusPending
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusPending:
		return "pending"
	default:
		return "unknown"
	}
}

// ExampleInfo identifies an example for reporters.
type ExampleInfo struct {
	// Path holds the descriptions of the enclosing groups, outermost first.
	Path        []string
	Description string
}

// FullDescription joins the group path and the example description.
func (i ExampleInfo) FullDescription() string {
	parts := make([]string, 0, len(i.Path)+1)
	for _, p := range i.Path {
		if p != "" {
			parts = append(parts, p)
		}
	}

	if i.Description != "" {
		parts = append(parts, i.Description)
	}

	return strings.Join(parts, " ")
}

// Report is the outcome of one example.
type Report struct {
	ExampleInfo
	Status   Status
	Err      error
	Duration time.Duration
}

// Reporter receives example events in execution order.
type Reporter interface {
	// ExampleStarted is called once the before hooks have run, immediately
	// before the example body.
	ExampleStarted(info ExampleInfo)
	// ExampleFinished is called after the after hooks have run.
	ExampleFinished(report Report)
}

type plainReporter struct {
	w io.Writer
}

// PlainReporter writes each example description verbatim, with no separator.
func PlainReporter(w io.Writer) Reporter {
	return &plainReporter{w: w}
}

func (p *plainReporter) ExampleStarted(info ExampleInfo) {
	_, _ = fmt.Fprint(p.w, info.Description)
}

func (p *plainReporter) ExampleFinished(Report) {}

// NopReporter discards every event.
type NopReporter struct{}

// ExampleStarted implements Reporter.
func (NopReporter) ExampleStarted(ExampleInfo) {}

// ExampleFinished implements Reporter.
func (NopReporter) ExampleFinished(Report) {}

// ReporterFuncs adapts a pair of functions to Reporter. Nil fields are skipped.
type ReporterFuncs struct {
	Started  func(info ExampleInfo)
	Finished func(report Report)
}

// ExampleStarted implements Reporter.
func (f ReporterFuncs) ExampleStarted(info ExampleInfo) {
	if f.Started != nil {
		f.Started(info)
	}
}

// ExampleFinished implements Reporter.
func (f ReporterFuncs) ExampleFinished(report Report) {
	if f.Finished != nil {
		f.Finished(report)
	}
}

type multiReporter []Reporter

// MultiReporter fans events out to every reporter in order.
func MultiReporter(reporters ...Reporter) Reporter {
	all := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			all = append(all, r)
		}
	}

	return all
}

func (m multiReporter) ExampleStarted(info ExampleInfo) {
	for _, r := range m {
		r.ExampleStarted(info)
	}
}

func (m multiReporter) ExampleFinished(report Report) {
	for _, r := range m {
		r.ExampleFinished(report)
	}
}
