package object

import "fmt"

type ErrorCode uint8

const (
	UnableToEvalFunction ErrorCode = iota + 1
	CannotEvaluateEmptyList
	CannotEvaluateNonSymbol
	InvalidArguments
)

// EvalError is the error returned by evaluation and by native functions.
// Detail is the function name for UnableToEvalFunction and the reason for
// InvalidArguments.
type EvalError struct {
	Code   ErrorCode
	Detail string
}

var (
	ErrUnableToEvalFunction    = &EvalError{Code: UnableToEvalFunction}
	ErrCannotEvaluateEmptyList = &EvalError{Code: CannotEvaluateEmptyList}
	ErrCannotEvaluateNonSymbol = &EvalError{Code: CannotEvaluateNonSymbol}
	ErrInvalidArguments        = &EvalError{Code: InvalidArguments}
)

func (e *EvalError) Error() string {
	switch e.Code {
	case UnableToEvalFunction:
		return "there are no available functions with name: " + e.Detail
	case CannotEvaluateEmptyList:
		return "cannot evaluate empty list"
	case CannotEvaluateNonSymbol:
		return "cannot evaluate non-symbol: " + e.Detail
	case InvalidArguments:
		return "invalid arguments: " + e.Detail
	}
	return fmt.Sprintf("eval error %d: %s", e.Code, e.Detail)
}

// Is matches on the code. An empty list or a non symbol head are also
// invalid arguments for the list being evaluated.
func (e *EvalError) Is(target error) bool {
	t, ok := target.(*EvalError)
	if !ok {
		return false
	}
	if t.Code == e.Code {
		return true
	}
	return t.Code == InvalidArguments && (e.Code == CannotEvaluateEmptyList || e.Code == CannotEvaluateNonSymbol)
}

func UnknownFunction(name string) *EvalError {
	return &EvalError{Code: UnableToEvalFunction, Detail: name}
}

func NonSymbol(head string) *EvalError {
	return &EvalError{Code: CannotEvaluateNonSymbol, Detail: head}
}

func InvalidArgs(format string, args ...any) *EvalError {
	return &EvalError{Code: InvalidArguments, Detail: fmt.Sprintf(format, args...)}
}
