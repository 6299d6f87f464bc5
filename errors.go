package territories

import (
	"errors"
	"fmt"
)

// ErrInvalidTerritory indicates an identifier outside the authoritative
// territory code universe.
var ErrInvalidTerritory = errors.New("territories: invalid territory")

// ErrNotFound indicates a valid code that is absent from the table queried.
var ErrNotFound = errors.New("territories: not found")

// ErrAmbiguousName indicates a display name shared by several codes in the
// source locale of a translation.
var ErrAmbiguousName = errors.New("territories: ambiguous name")

// ErrUnknownLocale indicates a locale identifier that could not be resolved
// to a supported locale.
var ErrUnknownLocale = errors.New("territories: unknown locale")

// InvalidTerritoryError carries the identifier that failed validation.
// It matches both ErrInvalidTerritory and ErrNotFound under errors.Is, so
// callers that only distinguish "lookup failed" from "locale failed" can
// test the single ErrNotFound sentinel.
type InvalidTerritoryError struct {
	Input string
}

func (e *InvalidTerritoryError) Error() string {
	return fmt.Sprintf("territories: invalid territory %q", e.Input)
}

func (e *InvalidTerritoryError) Is(target error) bool {
	return target == ErrInvalidTerritory || target == ErrNotFound
}

// NotFoundError reports a valid code (or an exact display name) missing from
// one specific table; Detail says which table and why.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return "territories: " + e.Detail
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

func notFoundf(format string, args ...any) error {
	return &NotFoundError{Detail: fmt.Sprintf(format, args...)}
}

// AmbiguousNameError reports a translation source name shared by more than
// one code in the source locale. Only returned under strict translation.
type AmbiguousNameError struct {
	Name   string
	Locale string
	Codes  []Code
}

func (e *AmbiguousNameError) Error() string {
	return fmt.Sprintf("territories: name %q maps to %d territories in locale %q", e.Name, len(e.Codes), e.Locale)
}

func (e *AmbiguousNameError) Is(target error) bool {
	return target == ErrAmbiguousName
}

// UnknownLocaleError carries the locale identifier that failed resolution.
type UnknownLocaleError struct {
	Identifier string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("territories: unknown locale %q", e.Identifier)
}

func (e *UnknownLocaleError) Is(target error) bool {
	return target == ErrUnknownLocale
}
