// Package errs defines the error kinds the codec reports to callers and a
// small helper for the invariant violations that spec calls programmer
// errors and terminate the process rather than surface as returned errors.
//
// Every error the compressor or decoder returns wraps one of the sentinel
// errors below, so callers can classify a failure with errors.Is without
// enumerating every specific message:
//
//	if errors.Is(err, errs.ErrInvalidConfiguration) {
//	    // caller picked an incompatible format/range-reduction combination
//	}
package errs

import (
	"errors"
	"fmt"
)

// Kind identifies which of the four error categories a failure belongs to.
type Kind uint8

const (
	// KindInvalidInput covers empty clips/skeletons, mismatched sample counts,
	// non-normalized input quaternions, and non-finite samples.
	KindInvalidInput Kind = iota
	// KindInvalidConfiguration covers quantized formats selected without the
	// matching range-reduction flag.
	KindInvalidConfiguration
	// KindAllocationFailure covers an allocator returning an error or nil buffer.
	KindAllocationFailure
	// KindCorruptArtifact covers decoder-side hash mismatches, out-of-bounds
	// offsets, and unknown algorithm tags or versions.
	KindCorruptArtifact
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindInvalidConfiguration:
		return "InvalidConfiguration"
	case KindAllocationFailure:
		return "AllocationFailure"
	case KindCorruptArtifact:
		return "CorruptArtifact"
	default:
		return "Unknown"
	}
}

// Sentinel errors, one per kind, for errors.Is-based classification.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrAllocationFailure    = errors.New("allocation failure")
	ErrCorruptArtifact      = errors.New("corrupt artifact")
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidInput:
		return ErrInvalidInput
	case KindInvalidConfiguration:
		return ErrInvalidConfiguration
	case KindAllocationFailure:
		return ErrAllocationFailure
	case KindCorruptArtifact:
		return ErrCorruptArtifact
	default:
		return errors.New("unknown error")
	}
}

// kindError wraps a sentinel with a specific message, staying errors.Is
// compatible with both the sentinel and, transitively, any wrapping done by
// the caller with fmt.Errorf("...: %w", err).
type kindError struct {
	kind     Kind
	sentinel error
	msg      string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.sentinel }

// KindOf reports the error kind, or false if err (or anything it wraps) is not
// one of this package's classified errors.
func KindOf(err error) (Kind, bool) {
	var ke *kindError
	if errors.As(err, &ke) {
		return ke.kind, true
	}

	return 0, false
}

// New creates a classified error with a static message.
func New(kind Kind, msg string) error {
	return &kindError{kind: kind, sentinel: sentinelFor(kind), msg: msg}
}

// Newf creates a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &kindError{kind: kind, sentinel: sentinelFor(kind), msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an existing error under kind, preserving err in the chain
// so both errors.Is(result, sentinelFor(kind)) and errors.Is(result, err) hold.
func Wrap(kind Kind, err error, msg string) error {
	if err == nil {
		return nil
	}

	return &kindError{kind: kind, sentinel: fmt.Errorf("%s: %w: %w", msg, sentinelFor(kind), err), msg: fmt.Sprintf("%s: %v", msg, err)}
}

// Invariant panics with a formatted diagnostic. Invariant violations
// inside the pipeline (e.g. a quaternion not normalized after conversion)
// are programmer errors that terminate the process rather than surface as
// returned errors.
func Invariant(format string, args ...any) {
	panic(fmt.Sprintf("animclip: invariant violated: "+format, args...))
}
