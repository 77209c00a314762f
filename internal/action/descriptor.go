package action

import (
	"errors"
	"fmt"
	"strings"
)

// Separator splits a command path into tree segments.
const Separator = "/"

// Kind distinguishes commands declared at startup from those registered for a
// single menu session.
type Kind int

const (
	KindStatic Kind = iota
	KindDynamic
)

func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Func is the body of a quick action.
type Func func() error

// Validator reports whether a command is enabled. It may also adjust the
// visible and checked flags of any command through the sink.
type Validator func(StateSink) bool

// Descriptor represents one invocable command.
type Descriptor struct {
	Path        string
	Name        string
	Description string
	Priority    int
	Action      Func
	Validator   Validator
	Kind        Kind
}

var (
	// ErrInvalidDescriptor marks a command declaration that cannot enter the catalog.
	ErrInvalidDescriptor = errors.New("invalid quick action declaration")
	// ErrNotFound is returned when executing an unknown path.
	ErrNotFound = errors.New("quick action not found")
	// ErrDisabled is returned when the freshly computed state hides or disables the command.
	ErrDisabled = errors.New("quick action disabled")
)

// ExecutionError wraps a failure raised by an action body.
type ExecutionError struct {
	Path string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execute %s: %v", e.Path, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NameFromPath returns the last segment of a command path.
func NameFromPath(path string) string {
	if idx := strings.LastIndex(path, Separator); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

// SplitPath breaks a command path into its segments.
func SplitPath(path string) []string {
	return strings.Split(path, Separator)
}

func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidDescriptor)
	}
	for _, segment := range SplitPath(path) {
		if strings.TrimSpace(segment) == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidDescriptor, path)
		}
	}
	return nil
}

func (d Descriptor) validate() error {
	if err := validatePath(d.Path); err != nil {
		return err
	}
	if d.Action == nil {
		return fmt.Errorf("%w: %q has no action", ErrInvalidDescriptor, d.Path)
	}
	return nil
}

func (d Descriptor) normalized(kind Kind) *Descriptor {
	out := d
	out.Kind = kind
	out.Name = NameFromPath(d.Path)
	if strings.TrimSpace(out.Description) == "" {
		out.Description = out.Name
	}
	return &out
}
