// Package domain holds the identity core of the time-tracking system: the
// Email, Name and Password value objects, the Role hierarchy and the User
// aggregate.
//
// Value objects are only obtainable through their validating constructors,
// which fail fast with an *Error describing the first rule the input broke.
// Length bounds come from a Limits value; the package-level constructors use
// DefaultLimits.
package domain
