package domain

import (
	"crypto/subtle"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const passwordItem = "Password"

// SpecialCharacters is the set a password must draw at least one char from.
const SpecialCharacters = "!@#$%^&*"

var (
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[!@#$%^&*]`)
)

// Password holds a policy-checked plaintext credential. It only lives as
// long as a request needs it; stores keep a PasswordHash instead.
type Password struct {
	value string
}

func NewPassword(raw string) (Password, error) {
	return DefaultLimits.NewPassword(raw)
}

// NewPassword applies the composition policy in a fixed order and reports
// only the first rule raw breaks.
func (l Limits) NewPassword(raw string) (Password, error) {
	err := check(CodeInvalidPassword, raw,
		notBlank(passwordItem),
		noSpaces(passwordItem),
		minLength(passwordItem, l.Password.Min),
		maxLength(passwordItem, l.Password.Max),
		matches(lowercaseRegex, RuleLowercase, passwordLowercaseMsg),
		matches(uppercaseRegex, RuleUppercase, passwordUppercaseMsg),
		matches(digitRegex, RuleDigit, passwordDigitMsg),
		matches(specialRegex, RuleSpecialCharacter, passwordSpecialMsg),
	)
	if err != nil {
		return Password{}, err
	}
	return Password{value: raw}, nil
}

// Value returns the plaintext. Intended for tests and demos.
func (p Password) Value() string { return p.value }

func (p Password) IsZero() bool { return p.value == "" }

// String never prints the credential.
func (p Password) String() string { return "********" }

// Compare reports whether candidate equals the stored plaintext exactly.
// The comparison takes the same time for every candidate of a given length.
func (p Password) Compare(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(p.value), []byte(candidate)) == 1
}

// Hash derives a salted bcrypt hash. A cost of 0 selects bcrypt.DefaultCost.
func (p Password) Hash(cost int) (PasswordHash, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(p.value), cost)
	if err != nil {
		return PasswordHash{}, fmt.Errorf("hash password: %w", err)
	}
	return PasswordHash{hash: h}, nil
}

// PasswordHash is a one-way bcrypt digest of a Password.
type PasswordHash struct {
	hash []byte
}

// Matches verifies candidate against the digest in constant time.
func (h PasswordHash) Matches(candidate string) bool {
	if len(h.hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(h.hash, []byte(candidate)) == nil
}

func (h PasswordHash) String() string { return string(h.hash) }
