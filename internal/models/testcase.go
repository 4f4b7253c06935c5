package models

// TestCase is one input record of the benchmark workload. Cases are
// immutable once generated; every scenario iterates the same cases in
// the same order.
type TestCase struct {
	ID            int    `json:"id"`
	RawMessage    string `json:"raw_message"`
	ExpectSuccess bool   `json:"expect_success"`
}

// TestCaseSet is an ordered sequence of test cases.
type TestCaseSet []TestCase

// ExpectedCounts returns the number of cases expected to succeed and to
// fail format validation.
func (s TestCaseSet) ExpectedCounts() (succeed, fail int) {
	for i := range s {
		if s[i].ExpectSuccess {
			succeed++
		} else {
			fail++
		}
	}
	return succeed, fail
}
