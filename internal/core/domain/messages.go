package domain

import "fmt"

const (
	passwordLowercaseMsg = "Password must contain at least one lowercase letter."
	passwordUppercaseMsg = "Password must contain at least one uppercase letter."
	passwordDigitMsg     = "Password must contain at least one digit."
	passwordSpecialMsg   = "Password must contain at least one special character."
)

func noSpacesMsg(item string) string { return item + " cannot contain spaces." }

func emptyMsg(item string) string { return item + " cannot be empty." }

func minLengthMsg(item string, n int) string {
	return fmt.Sprintf("%s must be at least %d characters.", item, n)
}

func maxLengthMsg(item string, n int) string {
	return fmt.Sprintf("%s must be at most %d characters.", item, n)
}

func invalidMsg(item string) string { return "Invalid " + item + "." }
