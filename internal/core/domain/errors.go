package domain

import (
	"errors"
	"fmt"
)

// Code classifies a domain failure.
type Code string

const (
	CodeInvalidEmail       Code = "INVALID_EMAIL"
	CodeInvalidName        Code = "INVALID_NAME"
	CodeInvalidPassword    Code = "INVALID_PASSWORD"
	CodeInvalidRole        Code = "INVALID_ROLE"
	CodeInvalidID          Code = "INVALID_ID"
	CodeRequiredFields     Code = "REQUIRED_FIELDS"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeNotFound           Code = "NOT_FOUND"
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeForbidden          Code = "FORBIDDEN"
)

// Rule names the individual check that rejected an input.
type Rule string

const (
	RuleEmpty            Rule = "empty"
	RuleNoSpaces         Rule = "no_spaces"
	RuleMinLength        Rule = "min_length"
	RuleMaxLength        Rule = "max_length"
	RuleFormat           Rule = "format"
	RuleLowercase        Rule = "lowercase"
	RuleUppercase        Rule = "uppercase"
	RuleDigit            Rule = "digit"
	RuleSpecialCharacter Rule = "special_character"
	RuleRequired         Rule = "required"
	RuleInvalid          Rule = "invalid"
)

// Error is the single error family raised by the domain layer.
type Error struct {
	Code    Code
	Rule    Rule
	Message string
}

func newError(code Code, rule Rule, message string) *Error {
	return &Error{Code: code, Rule: rule, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches on Code. Rule and Message of the target are compared only when
// set, so &Error{Code: CodeInvalidEmail} matches every email failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Code != t.Code {
		return false
	}
	if t.Rule != "" && e.Rule != t.Rule {
		return false
	}
	return t.Message == "" || e.Message == t.Message
}

var (
	ErrEmailAlreadyRegistered = newError(CodeAlreadyExists, "", "Email already registered.")
	ErrInvalidCredentials     = newError(CodeInvalidCredentials, "", "Invalid email or password.")
	ErrUserNotFound           = newError(CodeNotFound, "", "User not found.")
	ErrForbidden              = newError(CodeForbidden, "", "Access forbidden.")
)

// CodeOf returns the Code carried by err, or "" when err is not a domain error.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// RuleOf returns the Rule carried by err, or "".
func RuleOf(err error) Rule {
	var de *Error
	if errors.As(err, &de) {
		return de.Rule
	}
	return ""
}

// IsValidation reports whether err was raised by value-object or aggregate
// construction, as opposed to a repository or authorization condition.
func IsValidation(err error) bool {
	switch CodeOf(err) {
	case CodeInvalidEmail, CodeInvalidName, CodeInvalidPassword,
		CodeInvalidRole, CodeInvalidID, CodeRequiredFields:
		return true
	}
	return false
}
