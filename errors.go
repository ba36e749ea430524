package bcs

import (
	"errors"
	"fmt"
)

// ValidationError is returned when a value fails a schema's validator before
// any bytes are written: an out-of-range integer, a wrong-length fixed array
// or byte blob, an unknown enum variant, a struct missing a required field,
// or non-UTF-8 string input.
type ValidationError struct {
	Schema string // name of the schema that rejected the value
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("bcs: validation failed for %s: %s", e.Schema, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	return errors.As(target, &t)
}

// CapacityError is returned when a Writer needed to grow past its configured
// max_size.
type CapacityError struct {
	MaxSize  int
	Needed   int
	Position int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("bcs: writer capacity exceeded: need %d bytes at position %d, max_size is %d", e.Needed, e.Position, e.MaxSize)
}

func (e *CapacityError) Is(target error) bool {
	var t *CapacityError
	return errors.As(target, &t)
}

// ShortBufferError is returned when a Reader attempted to read past the end
// of its input.
type ShortBufferError struct {
	Want int
	Have int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("bcs: unexpected end of input: need %d bytes, have %d", e.Want, e.Have)
}

func (e *ShortBufferError) Is(target error) bool {
	var t *ShortBufferError
	return errors.As(target, &t)
}

// MalformedError is returned for input that cannot be a valid encoding of
// anything: a ULEB128 sequence that does not terminate within 5 bytes or
// exceeds 32 bits, a bool byte other than 0x00/0x01,
// an unknown enum discriminant, or invalid UTF-8 encountered while parsing a
// string.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("bcs: malformed input: %s", e.Reason)
}

func (e *MalformedError) Is(target error) bool {
	var t *MalformedError
	return errors.As(target, &t)
}

// SchemaError is returned when a schema is misused in a way only detectable
// at first use, such as a lazy factory producing a schema incompatible with
// its use site.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("bcs: schema error: %s", e.Reason)
}

func (e *SchemaError) Is(target error) bool {
	var t *SchemaError
	return errors.As(target, &t)
}
