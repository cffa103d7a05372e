package domain

import "fmt"

// Bounds is an inclusive [Min, Max] length range measured in characters.
type Bounds struct {
	Min int
	Max int
}

func (b Bounds) validate(item string) error {
	if b.Min < 1 {
		return fmt.Errorf("%s min length must be at least 1, got %d", item, b.Min)
	}
	if b.Max < b.Min {
		return fmt.Errorf("%s max length %d is below min length %d", item, b.Max, b.Min)
	}
	return nil
}

// Limits carries the length bounds applied by the value-object constructors.
type Limits struct {
	Email    Bounds
	Name     Bounds
	Password Bounds
}

// DefaultLimits is used by the package-level constructors.
var DefaultLimits = Limits{
	Email:    Bounds{Min: 6, Max: 254},
	Name:     Bounds{Min: 2, Max: 100},
	Password: Bounds{Min: 6, Max: 20},
}

// Validate reports bounds that no input could ever satisfy.
func (l Limits) Validate() error {
	if err := l.Email.validate("email"); err != nil {
		return err
	}
	if err := l.Name.validate("name"); err != nil {
		return err
	}
	return l.Password.validate("password")
}
