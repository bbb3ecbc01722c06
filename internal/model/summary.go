package model

import "myspec.dev/pkg/myspec/pkg/myspec"

// StatusFrom converts a live example status to its persisted form.
func StatusFrom(status myspec.Status) Status {
	switch status {
	case myspec.StatusPassed:
		return StatusPassed
	case myspec.StatusFailed:
		return StatusFailed
	case myspec.StatusPending:
		return StatusPending
	default:
		return Status(status.String())
	}
}

// ResultFrom converts a live example report to its persisted form.
func ResultFrom(report myspec.Report) ExampleResult {
	result := ExampleResult{
		Path:        append([]string(nil), report.Path...),
		Description: report.Description,
		Status:      StatusFrom(report.Status),
		Duration:    report.Duration,
	}

	if report.Err != nil {
		result.Error = report.Err.Error()
	}

	return result
}

// Summarize counts the examples of the given suites.
func Summarize(suites ...SuiteResult) Summary {
	var summary Summary

	for _, suite := range suites {
		for _, example := range suite.Examples {
			summary.Examples++
			summary.Duration += example.Duration

			switch example.Status {
			case StatusPassed:
				summary.Passed++
			case StatusFailed:
				summary.Failed++
			case StatusPending:
				summary.Pending++
			}
		}
	}

	summary.PassRate = passRate(summary.Passed, summary.Failed)

	return summary
}

// passRate is passed/(passed+failed). Pending examples are excluded from the
// denominator, and a run with nothing to judge scores 1.
func passRate(passed, failed int) float64 {
	total := passed + failed
	if total == 0 {
		return 1.0
	}

	return float64(passed) / float64(total)
}
