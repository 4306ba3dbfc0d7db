package itemgen

import "fmt"

// Validator checks a generated item's answer key against its content.
// Implementations are stateless and safe for concurrent use. Validators
// pass items of kinds they do not understand.
type Validator interface {
	// Name returns a short identifier used in error messages.
	Name() string

	// Validate returns nil when the item passes.
	Validate(item Item) *ValidationError
}

// ValidationError describes why an item failed a check.
type ValidationError struct {
	Validator string
	Message   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the full validator chain.
func DefaultValidators() []Validator {
	return []Validator{
		&ChoiceValidator{},
		&ArithValidator{ProductCap: DefaultArithParams().ProductCap},
		&TileValidator{},
		&WordValidator{},
		&ReasoningValidator{},
		&DiffValidator{},
	}
}

// Validate runs the chain in order and returns the first failure.
func Validate(item Item, validators ...Validator) error {
	for _, v := range validators {
		if verr := v.Validate(item); verr != nil {
			return verr
		}
	}
	return nil
}

func fail(v Validator, format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}
