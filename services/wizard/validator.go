package wizard

import (
	"regexp"
	"strings"

	"menagio/models"
)

// Validation gates mirror the booking form exactly. The phone pattern counts
// total length including separator characters, not digits: "123 456 789"
// passes with 11 characters while "123456789" fails with 9.
var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[\d\s+()-]{10,}$`)
)

// CanProceed reports whether the "Continue" gate for the given step is
// satisfied by the draft. Pure function, no side effects.
func CanProceed(draft *models.BookingDraft, step int) bool {
	switch step {
	case models.StepSchedule:
		return draft.Date != "" && draft.Time != "" && draft.Hours > 0
	case models.StepTasks:
		return len(draft.Tasks) > 0
	case models.StepPersonalInfo:
		return validPersonalInfo(draft)
	case models.StepPayment:
		// Advancing past payment happens only via the payment sub-flow's
		// success callback, never the shared Continue gate.
		return false
	case models.StepConfirmation:
		return true
	default:
		return false
	}
}

func validPersonalInfo(draft *models.BookingDraft) bool {
	if len(strings.TrimSpace(draft.FirstName)) < 2 {
		return false
	}
	if len(strings.TrimSpace(draft.LastName)) < 2 {
		return false
	}
	if !emailPattern.MatchString(draft.Email) {
		return false
	}
	return phonePattern.MatchString(draft.Phone)
}
