package clamav

// OptionalString is a string engine field that may be unset. libclamav keeps
// such fields as NULL, which is different from an empty string.
type OptionalString struct {
	Set bool
	// Value is the string value when Set is true. When Set is false, this
	// field must be ignored.
	Value string
}

func NewOptionalStringUnset() OptionalString {
	return OptionalString{}
}

func NewOptionalStringSet(value string) OptionalString {
	return OptionalString{Set: true, Value: value}
}

// String maps unset to the empty string. Use this when you do not need the
// differentiation anymore.
func (os OptionalString) String() string {
	if !os.Set {
		return ""
	}
	return os.Value
}
