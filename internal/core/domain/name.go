package domain

const nameItem = "Name"

// Name is a person's display name. Inner whitespace is kept verbatim.
type Name struct {
	value string
}

func NewName(raw string) (Name, error) {
	return DefaultLimits.NewName(raw)
}

// NewName rejects blank input and raw lengths outside l.Name. The stored
// value is raw, untrimmed.
func (l Limits) NewName(raw string) (Name, error) {
	err := check(CodeInvalidName, raw,
		notBlank(nameItem),
		minLength(nameItem, l.Name.Min),
		maxLength(nameItem, l.Name.Max),
	)
	if err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

func (n Name) Value() string  { return n.value }
func (n Name) String() string { return n.value }
func (n Name) IsZero() bool   { return n.value == "" }

func (n Name) Equals(other Name) bool {
	return n.value == other.value
}
