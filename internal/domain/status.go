package domain

const (
	TestStatusPending    = "pending"
	TestStatusPassed     = "passed"
	TestStatusFailed     = "failed"
	TestStatusIncomplete = "incomplete"
)

func ValidTestStatus(s string) bool {
	switch s {
	case TestStatusPending, TestStatusPassed, TestStatusFailed, TestStatusIncomplete:
		return true
	}

	return false
}
