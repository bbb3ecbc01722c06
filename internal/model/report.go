// Package model defines the data structures shared by the myspec workflow.
package model

import "time"

// Path represents a file system path.
type Path string

// CurrentReportVersion is written to every saved RunReport.
const CurrentReportVersion = 1

// Status is the persisted outcome of an example.
type Status string

const (
	// StatusPassed indicates every hook and the body succeeded.
	StatusPassed Status = "passed"
	// StatusFailed indicates a hook or the body failed.
	StatusFailed Status = "failed"
	// StatusPending indicates the example had no body.
	StatusPending Status = "pending"
)

// ExampleResult is the persisted form of a single example report.
type ExampleResult struct {
	Path        []string      `yaml:"path,flow"`
	Description string        `yaml:"description"`
	Status      Status        `yaml:"status"`
	Error       string        `yaml:"error,omitempty"`
	Duration    time.Duration `yaml:"duration"`
}

// SuiteResult holds the results of one suite run.
type SuiteResult struct {
	Name     string          `yaml:"name"`
	Examples []ExampleResult `yaml:"examples"`
}

// RunReport is the document written after a run.
type RunReport struct {
	Version   int           `yaml:"version"`
	StartedAt time.Time     `yaml:"started_at"`
	Duration  time.Duration `yaml:"duration"`
	Suites    []SuiteResult `yaml:"suites"`
}

// Summary aggregates example counts.
type Summary struct {
	Examples int
	Passed   int
	Failed   int
	Pending  int
	PassRate float64
	Duration time.Duration
}
