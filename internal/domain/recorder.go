package domain

import (
	"errors"

	m "myspec.dev/pkg/myspec/internal/model"
	"myspec.dev/pkg/myspec/pkg/myspec"
)

// recorder collects the reports of one suite.
type recorder struct {
	results  []m.ExampleResult
	failures []myspec.Report
}

func (r *recorder) ExampleStarted(myspec.ExampleInfo) {}

func (r *recorder) ExampleFinished(report myspec.Report) {
	r.results = append(r.results, m.ResultFrom(report))

	if report.Status == myspec.StatusFailed {
		r.failures = append(r.failures, report)
	}
}

// explains reports whether err is fully accounted for by recorded example
// failures, as opposed to a run aborted by DSL misuse.
func (r *recorder) explains(err error) bool {
	if errors.Is(err, myspec.ErrInvalidState) || errors.Is(err, myspec.ErrInvalidDefinition) {
		return false
	}

	return len(r.failures) > 0
}
