package domain

// DebitCardError is the closed set of expected, caller-recoverable command failures.
// These travel inside an OperationResult; they are never returned as Go errors from
// the command path.
type DebitCardError interface {
	error
	Name() string
	isDebitCardError()
}

// CardNotFoundError: the command targets an unknown card.
type CardNotFoundError struct{}

// LimitAlreadyAssigned: the card already has its write-once limit.
type LimitAlreadyAssigned struct{}

// CannotChargeError: the charge was rejected (blocked card or limit exceeded).
type CannotChargeError struct{}

// CannotPayOffError is part of the error taxonomy but no current rule produces it.
type CannotPayOffError struct{}

// CannotBlockCardError: the card is already blocked.
type CannotBlockCardError struct{}

func (CardNotFoundError) Name() string    { return "CardNotFoundError" }
func (LimitAlreadyAssigned) Name() string { return "LimitAlreadyAssigned" }
func (CannotChargeError) Name() string    { return "CannotChargeError" }
func (CannotPayOffError) Name() string    { return "CannotPayOffError" }
func (CannotBlockCardError) Name() string { return "CannotBlockCardError" }

func (CardNotFoundError) Error() string    { return "debit card not found" }
func (LimitAlreadyAssigned) Error() string { return "limit already assigned" }
func (CannotChargeError) Error() string    { return "cannot charge debit card" }
func (CannotPayOffError) Error() string    { return "cannot pay off debit card" }
func (CannotBlockCardError) Error() string { return "cannot block debit card" }

func (CardNotFoundError) isDebitCardError()    {}
func (LimitAlreadyAssigned) isDebitCardError() {}
func (CannotChargeError) isDebitCardError()    {}
func (CannotPayOffError) isDebitCardError()    {}
func (CannotBlockCardError) isDebitCardError() {}
