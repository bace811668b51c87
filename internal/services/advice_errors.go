package services

import "errors"

type AdviceErrorKind string

const (
	KindValidation        AdviceErrorKind = "VALIDATION_ERROR"
	KindConfiguration     AdviceErrorKind = "CONFIGURATION_ERROR"
	KindMalformedResponse AdviceErrorKind = "MALFORMED_RESPONSE"
	KindRequestFailed     AdviceErrorKind = "ADVICE_REQUEST_FAILED"
)

// AdviceError carries a user-facing message. The underlying cause is kept for
// logging and errors.Unwrap but never shown to the user.
type AdviceError struct {
	Kind    AdviceErrorKind
	Message string
	cause   error
}

func (e *AdviceError) Error() string {
	return e.Message
}

func (e *AdviceError) Unwrap() error {
	return e.cause
}

// Is matches any AdviceError of the same kind, so the sentinels below work
// with errors.Is.
func (e *AdviceError) Is(target error) bool {
	t, ok := target.(*AdviceError)
	return ok && t.Kind == e.Kind
}

var (
	ErrValidation        = &AdviceError{Kind: KindValidation, Message: "Please enter your query."}
	ErrConfiguration     = &AdviceError{Kind: KindConfiguration, Message: "Gemini API key is not configured."}
	ErrMalformedResponse = &AdviceError{Kind: KindMalformedResponse, Message: "Received malformed data from API."}
	ErrRequestFailed     = &AdviceError{Kind: KindRequestFailed, Message: "Failed to get farming advice. Please check your query or API key."}

	ErrAdviceInFlight = errors.New("an advice request is already in progress")
)

func newAdviceError(kind *AdviceError, cause error) *AdviceError {
	return &AdviceError{Kind: kind.Kind, Message: kind.Message, cause: cause}
}
