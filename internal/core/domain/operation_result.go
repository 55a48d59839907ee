package domain

// OperationResult is the outcome of a card command: success, or failure with a typed error.
// It always carries the original command so responses can echo it.
type OperationResult[C CardCommand] struct {
	command C
	err     DebitCardError
}

// Succeeded builds a successful result.
func Succeeded[C CardCommand](command C) OperationResult[C] {
	return OperationResult[C]{command: command}
}

// Failed builds a failed result.
func Failed[C CardCommand](command C, err DebitCardError) OperationResult[C] {
	return OperationResult[C]{command: command, err: err}
}

func (r OperationResult[C]) IsSuccess() bool { return r.err == nil }
func (r OperationResult[C]) Command() C      { return r.command }

// Error returns the failure reason, or nil on success.
func (r OperationResult[C]) Error() DebitCardError { return r.err }

// FoldResult maps a result to a single value.
func FoldResult[C CardCommand, U any](r OperationResult[C], onError func(C, DebitCardError) U, onSuccess func(C) U) U {
	if r.err != nil {
		return onError(r.command, r.err)
	}
	return onSuccess(r.command)
}
