package coordconv

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a conversion failure.
type ErrorKind int

// ErrorKind constants
const (
	KindUnknown ErrorKind = iota
	KindInvalidZoneFormat
	KindInvalidZoneRange
	KindNonexistentZone
	KindUnsupportedZone
	KindCoordinateOutOfBounds
	KindInvalidGridDesignation
	KindMalformedMGRSText
)

var kindNames = [...]string{
	KindUnknown:                "unknown",
	KindInvalidZoneFormat:      "invalid zone format",
	KindInvalidZoneRange:       "invalid zone range",
	KindNonexistentZone:        "nonexistent zone",
	KindUnsupportedZone:        "unsupported zone",
	KindCoordinateOutOfBounds:  "coordinate out of bounds",
	KindInvalidGridDesignation: "invalid grid designation",
	KindMalformedMGRSText:      "malformed MGRS text",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[KindUnknown]
	}
	return kindNames[k]
}

// Error is returned by every validation and conversion in this package. Value
// holds the offending input as text.
type Error struct {
	Kind   ErrorKind
	Value  string
	Reason string
}

func (e *Error) Error() string {
	switch {
	case e.Value != "" && e.Reason != "":
		return fmt.Sprintf("%s %q: %s", e.Kind, e.Value, e.Reason)
	case e.Value != "":
		return fmt.Sprintf("%s %q", e.Kind, e.Value)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
	}
	return e.Kind.String()
}

// Is reports whether target is the sentinel for the same kind, so that
// errors.Is(err, ErrUnsupportedZone) works for any unsupported zone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Value == "" && t.Reason == "" {
		return t.Kind == e.Kind
	}
	return *t == *e
}

// Sentinels for errors.Is.
var (
	ErrInvalidZoneFormat      = &Error{Kind: KindInvalidZoneFormat}
	ErrInvalidZoneRange       = &Error{Kind: KindInvalidZoneRange}
	ErrNonexistentZone        = &Error{Kind: KindNonexistentZone}
	ErrUnsupportedZone        = &Error{Kind: KindUnsupportedZone}
	ErrCoordinateOutOfBounds  = &Error{Kind: KindCoordinateOutOfBounds}
	ErrInvalidGridDesignation = &Error{Kind: KindInvalidGridDesignation}
	ErrMalformedMGRSText      = &Error{Kind: KindMalformedMGRSText}
)

// KindOf returns the ErrorKind carried by err, or KindUnknown if err did not
// come from this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func newError(kind ErrorKind, value, reason string) error {
	return &Error{Kind: kind, Value: value, Reason: reason}
}
