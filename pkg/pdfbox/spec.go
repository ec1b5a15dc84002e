package pdfbox

import "strconv"

// CommandSpec describes a single external invocation: a PDFBox app
// subcommand plus the flags and positional arguments in the exact order they
// will appear on the command line. PDFBox is position-sensitive for some
// subcommands, so nothing is reordered and flags with no value are never
// emitted as empty tokens.
type CommandSpec struct {
	Subcommand string
	args       []string
}

func newSpec(subcommand string) *CommandSpec {
	return &CommandSpec{Subcommand: subcommand}
}

// Flag appends a boolean-presence flag, e.g. Flag("sort") -> "-sort".
func (s *CommandSpec) Flag(name string) *CommandSpec {
	s.args = append(s.args, "-"+name)
	return s
}

// FlagValue appends "-name value". An empty value omits the flag entirely.
func (s *CommandSpec) FlagValue(name, value string) *CommandSpec {
	if value == "" {
		return s
	}
	s.args = append(s.args, "-"+name, value)
	return s
}

// FlagInt appends "-name value". A zero value omits the flag entirely.
func (s *CommandSpec) FlagInt(name string, value int) *CommandSpec {
	if value == 0 {
		return s
	}
	s.args = append(s.args, "-"+name, strconv.Itoa(value))
	return s
}

// Arg appends positional arguments as-is.
func (s *CommandSpec) Arg(values ...string) *CommandSpec {
	s.args = append(s.args, values...)
	return s
}

// Args returns the serialized argument list: the subcommand followed by every
// flag and positional in insertion order.
func (s *CommandSpec) Args() []string {
	out := make([]string, 0, len(s.args)+1)
	out = append(out, s.Subcommand)
	out = append(out, s.args...)
	return out
}
