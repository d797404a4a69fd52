package lib

// Status is the outcome of a single test case.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// Skip reasons.
const (
	ReasonInputMissing  = "input missing"
	ReasonOutputMissing = "output missing"
)

// TestResult contains the result of a single test case.
type TestResult struct {
	Case      int    `json:"case"`
	Status    Status `json:"status"`
	Reason    string `json:"reason,omitempty"`
	InputText string `json:"inputText,omitempty"`
	InputN    int    `json:"inputN"`
	Expected  string `json:"expected,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Returns a TestResult for cases whose files were missing.
func SkippedTestResult(number int, reason string) TestResult {
	return TestResult{
		Case:   number,
		Status: StatusSkipped,
		Reason: reason,
	}
}

// Returns a TestResult for cases that failed with an error rather than a mismatch.
func ErrorTestResult(number int, err error) TestResult {
	return TestResult{
		Case:   number,
		Status: StatusFailed,
		Error:  err.Error(),
	}
}

// Summary holds the counters printed at the end of a run.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Total   int `json:"total"`
}

// Summarize counts results. Total is every discovered case, skipped ones included.
func Summarize(results []TestResult) Summary {
	summary := Summary{Total: len(results)}
	for _, result := range results {
		switch result.Status {
		case StatusPassed:
			summary.Passed++
		case StatusFailed:
			summary.Failed++
		case StatusSkipped:
			summary.Skipped++
		}
	}
	return summary
}

// AllPassed reports whether every discovered case passed.
func (s Summary) AllPassed() bool {
	return s.Passed == s.Total
}
