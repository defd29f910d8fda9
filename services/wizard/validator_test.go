package wizard

import (
	"testing"

	"menagio/models"
)

func scheduleDraft() models.BookingDraft {
	return models.BookingDraft{Date: "2026-03-14", Time: "09:00", Hours: 3}
}

func personalDraft() models.BookingDraft {
	return models.BookingDraft{
		FirstName: "Marie",
		LastName:  "Dubois",
		Email:     "marie@example.com",
		Phone:     "079 123 45 67",
	}
}

func TestCanProceedSchedule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingDraft)
		want   bool
	}{
		{"complete", func(d *models.BookingDraft) {}, true},
		{"missing date", func(d *models.BookingDraft) { d.Date = "" }, false},
		{"missing time", func(d *models.BookingDraft) { d.Time = "" }, false},
		{"zero hours", func(d *models.BookingDraft) { d.Hours = 0 }, false},
		{"negative hours", func(d *models.BookingDraft) { d.Hours = -2 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := scheduleDraft()
			tt.mutate(&draft)
			if got := CanProceed(&draft, models.StepSchedule); got != tt.want {
				t.Errorf("CanProceed(schedule) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanProceedTasks(t *testing.T) {
	draft := models.BookingDraft{}
	if CanProceed(&draft, models.StepTasks) {
		t.Error("empty task set should not proceed")
	}
	draft.ToggleTask("kitchen")
	if !CanProceed(&draft, models.StepTasks) {
		t.Error("one selected task should proceed")
	}
	draft.ToggleTask("kitchen")
	if CanProceed(&draft, models.StepTasks) {
		t.Error("toggled-off task set should not proceed")
	}
}

func TestCanProceedPersonalInfo(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingDraft)
		want   bool
	}{
		{"complete", func(d *models.BookingDraft) {}, true},
		{"one-letter first name", func(d *models.BookingDraft) { d.FirstName = "M" }, false},
		{"whitespace-padded short name", func(d *models.BookingDraft) { d.FirstName = " M " }, false},
		{"two-letter name", func(d *models.BookingDraft) { d.FirstName = "Al" }, true},
		{"one-letter last name", func(d *models.BookingDraft) { d.LastName = "D" }, false},
		{"email without at", func(d *models.BookingDraft) { d.Email = "marie.example.com" }, false},
		{"email without dot in domain", func(d *models.BookingDraft) { d.Email = "marie@example" }, false},
		{"email with space", func(d *models.BookingDraft) { d.Email = "ma rie@example.com" }, false},
		{"minimal valid email", func(d *models.BookingDraft) { d.Email = "a@b.c" }, true},
		{"phone with separators counting", func(d *models.BookingDraft) { d.Phone = "123 456 789" }, true},
		{"nine digits bare", func(d *models.BookingDraft) { d.Phone = "123456789" }, false},
		{"ten digits bare", func(d *models.BookingDraft) { d.Phone = "0791234567" }, true},
		{"international format", func(d *models.BookingDraft) { d.Phone = "+41 (79) 123-45-67" }, true},
		{"phone with letters", func(d *models.BookingDraft) { d.Phone = "079 123 45 6a" }, false},
		{"empty phone", func(d *models.BookingDraft) { d.Phone = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := personalDraft()
			tt.mutate(&draft)
			if got := CanProceed(&draft, models.StepPersonalInfo); got != tt.want {
				t.Errorf("CanProceed(personal) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanProceedPaymentAndConfirmation(t *testing.T) {
	full := personalDraft()
	full.Date, full.Time, full.Hours = "2026-03-14", "09:00", 3
	full.Tasks = []string{"kitchen"}

	// The payment step never advances through the generic gate, even with a
	// fully valid draft.
	if CanProceed(&full, models.StepPayment) {
		t.Error("payment step must not pass the generic continue gate")
	}
	if !CanProceed(&models.BookingDraft{}, models.StepConfirmation) {
		t.Error("confirmation step is always valid")
	}
	if CanProceed(&full, 0) || CanProceed(&full, 6) {
		t.Error("out-of-range steps must not proceed")
	}
}
