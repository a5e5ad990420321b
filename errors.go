package txmanifest

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions.
var (
	// ErrNilValue indicates a Value slot that was never filled.
	ErrNilValue = errors.New("txmanifest: nil value")

	// ErrInvalidDecimal indicates a decimal string that is not a finite number.
	ErrInvalidDecimal = errors.New("txmanifest: invalid decimal")

	// ErrDecimalPrecision indicates more fractional digits than the decimal kind holds.
	ErrDecimalPrecision = errors.New("txmanifest: too many decimal places")

	// ErrDecimalOverflow indicates a decimal outside the representable range.
	ErrDecimalOverflow = errors.New("txmanifest: decimal out of range")

	// ErrLocalIdFormat indicates a local id not wrapped in <>, ##, [] or {}.
	ErrLocalIdFormat = errors.New("txmanifest: unrecognized non-fungible local id format")

	// ErrLocalIdLength indicates a string or bytes local id of invalid length.
	ErrLocalIdLength = errors.New("txmanifest: non-fungible local id length out of range")

	// ErrLocalIdCharacter indicates a string local id with a forbidden character.
	ErrLocalIdCharacter = errors.New("txmanifest: invalid character in non-fungible local id")

	// ErrLocalIdUUID indicates a UUID local id that is not version 4.
	ErrLocalIdUUID = errors.New("txmanifest: non-fungible local id uuid must be version 4")

	// ErrUnknownNetwork indicates that no network could be deduced from an address.
	ErrUnknownNetwork = errors.New("txmanifest: no network could be deduced from address")

	// ErrAddressLength indicates raw address bytes of the wrong length.
	ErrAddressLength = errors.New("txmanifest: invalid address length")

	// ErrUnknownEntityType indicates an address whose first byte is not a known entity type.
	ErrUnknownEntityType = errors.New("txmanifest: unknown entity type")

	// ErrChecksumVariant indicates an address encoded with the bech32 rather than bech32m checksum.
	ErrChecksumVariant = errors.New("txmanifest: address checksum is not bech32m")

	// ErrEntityPrefixMismatch indicates an address whose prefix does not match its entity type.
	ErrEntityPrefixMismatch = errors.New("txmanifest: address prefix does not match entity type")

	// ErrInvalidExpression indicates an unknown expression string.
	ErrInvalidExpression = errors.New("txmanifest: invalid expression")

	// ErrIdentifierOverflow indicates an identifier namespace with no ids left.
	ErrIdentifierOverflow = errors.New("txmanifest: identifier ids exhausted")

	// ErrUnresolvedIdentifier indicates a named identifier reached the binary encoder.
	ErrUnresolvedIdentifier = errors.New("txmanifest: identifier has not been resolved to a numeric id")

	// ErrInvalidPayloadPrefix indicates a payload that does not start with the manifest prefix.
	ErrInvalidPayloadPrefix = errors.New("txmanifest: invalid payload prefix")

	// ErrUnknownValueKind indicates an unknown kind byte in a payload.
	ErrUnknownValueKind = errors.New("txmanifest: unknown value kind")

	// ErrMaxDepthExceeded indicates a value nested deeper than allowed.
	ErrMaxDepthExceeded = errors.New("txmanifest: maximum nesting depth exceeded")

	// ErrContainerTooLarge indicates a length prefix above the allowed maximum.
	ErrContainerTooLarge = errors.New("txmanifest: container too large")

	// ErrTrailingBytes indicates bytes left over after decoding a payload.
	ErrTrailingBytes = errors.New("txmanifest: trailing bytes after payload")

	// ErrInvalidUTF8 indicates a string that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("txmanifest: invalid utf-8 string")

	// ErrDuplicateName indicates a name registered twice in one conversion.
	ErrDuplicateName = errors.New("txmanifest: name already registered")

	// ErrTooManyArguments indicates an instruction given more arguments than it takes.
	ErrTooManyArguments = errors.New("txmanifest: too many arguments")

	// ErrMissingArgument indicates an instruction given fewer arguments than it takes.
	ErrMissingArgument = errors.New("txmanifest: missing argument")

	// ErrDuplicateBucket indicates a bucket declared twice.
	ErrDuplicateBucket = errors.New("txmanifest: duplicate bucket declaration")

	// ErrUndeclaredBucket indicates use of a bucket that was never declared or was already consumed.
	ErrUndeclaredBucket = errors.New("txmanifest: use of undeclared bucket")

	// ErrIdentifierNotVisible indicates a bucket or proof used outside its lifetime.
	ErrIdentifierNotVisible = errors.New("txmanifest: identifier not visible at this point")

	// ErrUnsupportedArgument indicates a Go value Invoke cannot convert.
	ErrUnsupportedArgument = errors.New("txmanifest: unsupported argument type")

	// ErrInvalidCallModule indicates a module call on a target that has no modules.
	ErrInvalidCallModule = errors.New("txmanifest: target does not support module calls")

	// ErrNoBlueprint indicates a function call on a package target without a blueprint.
	ErrNoBlueprint = errors.New("txmanifest: package target has no blueprint")
)

// UnknownKindError indicates an unrecognized kind name.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("txmanifest: unknown value kind %q", e.Name)
}

// InvalidKindError indicates a value of one kind where another was required.
type InvalidKindError struct {
	Expected Kind
	Actual   Kind
}

func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("txmanifest: invalid kind: expected %s, got %s", e.Expected, e.Actual)
}

// OutOfRangeError indicates an integer that does not fit its kind.
type OutOfRangeError struct {
	Kind  Kind
	Value string
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("txmanifest: %s out of range for %s", e.Value, e.Kind)
}

// DecimalError wraps a failure to parse or represent a decimal.
type DecimalError struct {
	Kind  Kind
	Input string
	Err   error
}

func (e *DecimalError) Error() string {
	return fmt.Sprintf("txmanifest: invalid %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *DecimalError) Unwrap() error {
	return e.Err
}

// LocalIdError wraps a failure to parse a non-fungible local id.
type LocalIdError struct {
	Input string
	Err   error
}

func (e *LocalIdError) Error() string {
	return fmt.Sprintf("txmanifest: invalid non-fungible local id %q: %v", e.Input, e.Err)
}

func (e *LocalIdError) Unwrap() error {
	return e.Err
}

// UnrecognizedAddressFormatError indicates an address that could not be
// encoded or decoded.
type UnrecognizedAddressFormatError struct {
	Address string
	Err     error
}

func (e *UnrecognizedAddressFormatError) Error() string {
	return fmt.Sprintf("txmanifest: unrecognized address format %q: %v", e.Address, e.Err)
}

func (e *UnrecognizedAddressFormatError) Unwrap() error {
	return e.Err
}

// AddressKindError indicates an address whose entity type does not belong to
// the requested address kind.
type AddressKindError struct {
	Address  NetworkAwareAddress
	Expected Kind
}

func (e *AddressKindError) Error() string {
	return fmt.Sprintf("txmanifest: address %s of entity %s is not a %s", e.Address, e.Address.EntityType(), e.Expected)
}

// NetworkMismatchError indicates addresses from more than one network.
type NetworkMismatchError struct {
	Expected uint8
	Found    uint8
}

func (e *NetworkMismatchError) Error() string {
	return fmt.Sprintf("txmanifest: network mismatch: expected network 0x%02x, found 0x%02x", e.Expected, e.Found)
}

// UnexpectedContentsError indicates manifest text whose contents do not fit
// the value being parsed.
type UnexpectedContentsError struct {
	Parsing  Kind
	Expected string
	Actual   string
}

func (e *UnexpectedContentsError) Error() string {
	return fmt.Sprintf("txmanifest: unexpected contents while parsing %s: expected %s, got %s", e.Parsing, e.Expected, e.Actual)
}

// EncodeError indicates a failure to encode a value to its binary form.
type EncodeError struct {
	Kind Kind
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("txmanifest: encoding %s: %v", e.Kind, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeError indicates a failure to decode a binary payload.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("txmanifest: decoding at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// SchemaValidationError indicates a payload that decodes but does not have
// the expected shape.
type SchemaValidationError struct {
	Path   string
	Reason string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("txmanifest: schema validation failed at %s: %s", e.Path, e.Reason)
}

// NameNotFoundError indicates a reference to a name that was never registered.
type NameNotFoundError struct {
	Kind IdentifierKind
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("txmanifest: named %s not found: %q", e.Kind, e.Name)
}

// NoAssociatedNameError indicates a numeric identifier without a display name.
type NoAssociatedNameError struct {
	Kind IdentifierKind
	ID   uint32
}

func (e *NoAssociatedNameError) Error() string {
	return fmt.Sprintf("txmanifest: %s %d has no associated name", e.Kind, e.ID)
}

// BucketError reports a bucket provenance violation.
type BucketError struct {
	Bucket TransientIdentifier
	Err    error
}

func (e *BucketError) Error() string {
	return fmt.Sprintf("txmanifest: bucket %s: %v", e.Bucket, e.Err)
}

func (e *BucketError) Unwrap() error {
	return e.Err
}

// MissingResourceChangesError indicates an instruction that needs execution
// trace data which was not supplied.
type MissingResourceChangesError struct {
	InstructionIndex uint32
}

func (e *MissingResourceChangesError) Error() string {
	return fmt.Sprintf("txmanifest: no resource changes for instruction %d", e.InstructionIndex)
}

// UnknownInstructionError indicates an unrecognized instruction name or opcode.
type UnknownInstructionError struct {
	Name string
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("txmanifest: unknown instruction %s", e.Name)
}

// ArgumentError indicates an issue with an instruction argument.
type ArgumentError struct {
	Instruction InstructionKind
	Index       int
	Err         error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("txmanifest: argument %d of %s: %v", e.Index, e.Instruction, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// InstructionError wraps errors that occur while processing one instruction.
type InstructionError struct {
	Index       int
	Instruction InstructionKind
	Err         error
}

func (e *InstructionError) Error() string {
	return fmt.Sprintf("txmanifest: instruction %d (%s): %v", e.Index, e.Instruction, e.Err)
}

func (e *InstructionError) Unwrap() error {
	return e.Err
}

// VisibilityError reports a transient identifier used before it was created
// or after it was consumed.
type VisibilityError struct {
	Kind IdentifierKind
	ID   uint32
}

func (e *VisibilityError) Error() string {
	return fmt.Sprintf("txmanifest: %s %d: %v", e.Kind, e.ID, ErrIdentifierNotVisible)
}

func (e *VisibilityError) Unwrap() error {
	return ErrIdentifierNotVisible
}

// BuildError wraps errors found while building a manifest.
type BuildError struct {
	InstructionIndex int
	Instruction      InstructionKind
	Err              error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("txmanifest: build failed at instruction %d (%s): %v", e.InstructionIndex, e.Instruction, e.Err)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
