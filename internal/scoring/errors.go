package scoring

import "fmt"

// InvalidInputError reports a malformed field on a scoring input.
// Scoring fails atomically: either every field is well-formed and a
// score is produced, or the call returns one of these.
type InvalidInputError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s=%v: %s", e.Field, e.Value, e.Reason)
}

func invalidInput(field string, value interface{}, reason string) error {
	return &InvalidInputError{Field: field, Value: value, Reason: reason}
}
