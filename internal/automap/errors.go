package automap

import (
	"errors"
	"fmt"
	"strings"

	"automapper/internal/analyze"
	"automapper/internal/common"
)

var (
	// ErrUnmappedMember is returned when no step claims a member that should be mapped.
	ErrUnmappedMember = errors.New("unmapped member")
	// ErrOwnershipConflict is returned when two steps accept the same member without a tie-break.
	ErrOwnershipConflict = errors.New("ownership conflict")
	// ErrMalformedShape is returned when a collection element type cannot be resolved.
	ErrMalformedShape = errors.New("malformed generic shape")
)

// ErrorKind classifies a MemberError.
type ErrorKind int

const (
	KindUnmapped ErrorKind = iota
	KindOwnershipConflict
	KindMalformedShape
)

// String returns a human-readable representation of the ErrorKind.
func (k ErrorKind) String() string {
	switch k {
	case KindUnmapped:
		return "unmapped"
	case KindOwnershipConflict:
		return "ownership_conflict"
	case KindMalformedShape:
		return "malformed_shape"
	default:
		return common.UnknownStr
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case KindUnmapped:
		return ErrUnmappedMember
	case KindOwnershipConflict:
		return ErrOwnershipConflict
	case KindMalformedShape:
		return ErrMalformedShape
	default:
		return nil
	}
}

// MemberError is a fault that aborts a mapping pass. It names the type, member and step involved.
type MemberError struct {
	Kind   ErrorKind
	Type   analyze.TypeID
	Member string
	Steps  []string // the owning step, or every accepting step for ownership conflicts
	Detail string
}

// Error implements error.
func (e *MemberError) Error() string {
	var b strings.Builder

	b.WriteString(e.Kind.sentinel().Error())
	b.WriteString(": ")
	b.WriteString(e.Type.String())

	if e.Member != "" {
		b.WriteString(".")
		b.WriteString(e.Member)
	}

	if len(e.Steps) > 0 {
		fmt.Fprintf(&b, " (steps: %s)", strings.Join(e.Steps, ", "))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	return b.String()
}

// Is matches the sentinel of the error kind.
func (e *MemberError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func memberError(kind ErrorKind, m *analyze.Member, detail string, steps ...string) *MemberError {
	return &MemberError{
		Kind:   kind,
		Type:   m.DeclaringType,
		Member: m.Name,
		Steps:  steps,
		Detail: detail,
	}
}
