package models

// Wizard step numbers. Steps 1..5 map to schedule, tasks, personal info,
// payment and confirmation.
const (
	StepSchedule     = 1
	StepTasks        = 2
	StepPersonalInfo = 3
	StepPayment      = 4
	StepConfirmation = 5
)

// WizardSession holds wizard progress between requests.
type WizardSession struct {
	SessionID string       `json:"sessionId"`
	Draft     BookingDraft `json:"draft"`

	CurrentStep  int  `json:"currentStep"`
	IsSubmitting bool `json:"isSubmitting"`

	// Authentication gate state. The wizard interrupts at step 2 until the
	// customer signs in; AuthAdvancePending records that the interrupted Next
	// should complete exactly once after authentication.
	IsAuthenticated    bool   `json:"isAuthenticated"`
	UserID             string `json:"userId,omitempty"`
	AuthModalVisible   bool   `json:"authModalVisible"`
	AuthAdvancePending bool   `json:"authAdvancePending"`
}
