package lottery

import "errors"

var (
	ErrNoWeightedTeams = errors.New("no lottery teams with percentages found")
	ErrZeroTotalWeight = errors.New("total percentage weight is 0")
	ErrPoolExhausted   = errors.New("lottery pool exhausted before all picks were made")
	ErrPoolMismatch    = errors.New("more lottery teams than lottery picks")
)

// GenerationError means a draw could not be completed. The current draw is
// abandoned; callers should fix the configuration rather than retry.
type GenerationError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Pick    int    `json:"pick"` // 1-based pick that failed, 0 when no pick was attempted
	cause   error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.cause
}

func newGenerationError(cause error, pick int, message string) *GenerationError {
	return &GenerationError{
		Type:    "generation_error",
		Message: message,
		Pick:    pick,
		cause:   cause,
	}
}
