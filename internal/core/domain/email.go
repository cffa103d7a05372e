package domain

import (
	"regexp"
	"strings"
)

const emailItem = "Email"

// emailRegex accepts local@label(.label)+ where each DNS label is 1-63
// alphanumeric or hyphen characters and does not start or end with a hyphen.
var emailRegex = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@" +
	`[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
	`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// Email is a validated email address. The zero value is not a valid Email.
type Email struct {
	value string
}

// NewEmail validates raw under DefaultLimits.
func NewEmail(raw string) (Email, error) {
	return DefaultLimits.NewEmail(raw)
}

// NewEmail trims raw, validates the trimmed address and stores it.
func (l Limits) NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	err := check(CodeInvalidEmail, trimmed,
		notBlank(emailItem),
		noSpaces(emailItem),
		minLength(emailItem, l.Email.Min),
		maxLength(emailItem, l.Email.Max),
		matches(emailRegex, RuleFormat, invalidMsg(emailItem)),
	)
	if err != nil {
		return Email{}, err
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }
func (e Email) IsZero() bool   { return e.value == "" }

func (e Email) Equals(other Email) bool {
	return e.value == other.value
}
