package wizard

import "errors"

var (
	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = errors.New("wizard session not found or expired")
	// ErrStepIncomplete means the current step's validation gate is not satisfied.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrAuthRequired means the flow is interrupted by the sign-in gate.
	ErrAuthRequired = errors.New("authentication required to continue")
	// ErrPaymentRequired means step 4 can only advance through a successful payment.
	ErrPaymentRequired = errors.New("payment must complete before continuing")
	// ErrNotConfirmationStep means Submit was called from a step other than 5.
	ErrNotConfirmationStep = errors.New("booking can only be submitted from the confirmation step")
	// ErrAlreadySubmitting guards against a double-tapped submit.
	ErrAlreadySubmitting = errors.New("submission already in progress")
)
