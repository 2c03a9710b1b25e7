package decode

import (
	"fmt"
)

// OptionError reports an option that is not known in its section.
type OptionError struct {
	Option  string
	Section string
	File    string
	Position
}

func (e OptionError) Error() string {
	return fmt.Sprintf("%s: option %s not recognized in section %s", e.Position, e.Option, e.Section)
}

type DecodeError struct {
	Message string
	File    string
	Position
}

func (e DecodeError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%s: %s", e.File, e.Position, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}
