package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// check runs rules in order and converts the first failure into an *Error
// tagged with code. validation.Validate stops at the first failing rule.
func check(code Code, value string, rules ...validation.Rule) error {
	err := validation.Validate(value, rules...)
	if err == nil {
		return nil
	}
	var ve validation.Error
	if errors.As(err, &ve) {
		return newError(code, Rule(ve.Code()), ve.Message())
	}
	return newError(code, RuleInvalid, err.Error())
}

func ruleError(rule Rule, message string) validation.Error {
	return validation.NewError(string(rule), message)
}

func notBlank(item string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return ruleError(RuleEmpty, emptyMsg(item))
		}
		return nil
	})
}

func noSpaces(item string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
			return ruleError(RuleNoSpaces, noSpacesMsg(item))
		}
		return nil
	})
}

func minLength(item string, n int) validation.Rule {
	return validation.RuneLength(n, 0).ErrorObject(ruleError(RuleMinLength, minLengthMsg(item, n)))
}

func maxLength(item string, n int) validation.Rule {
	return validation.RuneLength(0, n).ErrorObject(ruleError(RuleMaxLength, maxLengthMsg(item, n)))
}

func matches(re *regexp.Regexp, rule Rule, message string) validation.Rule {
	return validation.Match(re).ErrorObject(ruleError(rule, message))
}
