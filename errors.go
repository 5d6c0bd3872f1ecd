package gridplate

import "fmt"

// ConfigurationError reports an invalid GridSpec or option value. It
// is returned before any geometry is constructed.
type ConfigurationError struct {
	Option string // offending option or field name
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "gridplate: invalid configuration: " + e.Option + ": " + e.Reason
}

// GeometryError reports degenerate geometric input, such as a
// non-positive sweep length or a wall thicker than the corner radius.
// Like ConfigurationError it is detected eagerly: no partial solids
// are ever emitted.
type GeometryError struct {
	Op     string // geometric operation that rejected its input
	Reason string
}

func (e *GeometryError) Error() string {
	return "gridplate: " + e.Op + ": " + e.Reason
}

func errConfigf(option, format string, args ...any) error {
	return &ConfigurationError{Option: option, Reason: fmt.Sprintf(format, args...)}
}

func errGeomf(op, format string, args ...any) error {
	return &GeometryError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
