package engine

import (
	"errors"
	"strings"

	"github.com/tartampluch/go-bmi/internal/config"
)

// Kind identifies which validation rule rejected the input.
type Kind int

const (
	MissingFields Kind = iota + 1
	NonNumeric
	HeightOutOfRange
	WeightOutOfRange
)

// Sentinels usable with errors.Is against a *ValidationError.
var (
	ErrMissingFields    = errors.New(config.ErrMissingFields)
	ErrNonNumeric       = errors.New(config.ErrNonNumeric)
	ErrHeightOutOfRange = errors.New(config.ErrHeightRange)
	ErrWeightOutOfRange = errors.New(config.ErrWeightRange)
)

func (k Kind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return config.ErrUnknownKind
}

func (k Kind) sentinel() error {
	switch k {
	case MissingFields:
		return ErrMissingFields
	case NonNumeric:
		return ErrNonNumeric
	case HeightOutOfRange:
		return ErrHeightOutOfRange
	case WeightOutOfRange:
		return ErrWeightOutOfRange
	default:
		return nil
	}
}

// Message returns the fixed user-facing message for the kind.
func (k Kind) Message() string {
	switch k {
	case MissingFields:
		return config.MsgMissingFields
	case NonNumeric:
		return config.MsgNonNumeric
	case HeightOutOfRange:
		return config.MsgHeightRange
	case WeightOutOfRange:
		return config.MsgWeightRange
	default:
		return config.ErrUnknownKind
	}
}

// FieldFlags marks which inputs should be highlighted.
type FieldFlags struct {
	Name   bool
	Height bool
	Weight bool
}

// Any reports whether at least one field is flagged.
func (f FieldFlags) Any() bool {
	return f.Name || f.Height || f.Weight
}

// Names lists the flagged fields in form order.
func (f FieldFlags) Names() []string {
	var out []string
	if f.Name {
		out = append(out, config.FieldName)
	}
	if f.Height {
		out = append(out, config.FieldHeight)
	}
	if f.Weight {
		out = append(out, config.FieldWeight)
	}
	return out
}

func (f FieldFlags) String() string {
	return strings.Join(f.Names(), ",")
}

// ValidationError is the only error Compute returns. It is recoverable:
// the user corrects the flagged fields and submits again.
type ValidationError struct {
	Kind    Kind
	Message string
	Fields  FieldFlags
}

func newValidationError(kind Kind, fields FieldFlags) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Message: kind.Message(),
		Fields:  fields,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches the sentinel of the error's kind.
func (e *ValidationError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}
