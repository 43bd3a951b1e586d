package config

import "fmt"

// Option names a pinentry setting that maps to a protocol command prefix.
type Option string

const (
	// OptionDescription is the descriptive text shown above the entry field.
	OptionDescription Option = "description"
	// OptionPrompt is the label in front of the entry field.
	OptionPrompt Option = "prompt"
	// OptionTitle is the window title.
	OptionTitle Option = "title"
	// OptionOKText is the label of the OK button.
	OptionOKText Option = "ok_text"
	// OptionCancelText is the label of the Cancel button.
	OptionCancelText Option = "cancel_text"
	// OptionNotOKText is the label of the "not OK" button.
	OptionNotOKText Option = "not_ok_text"
	// OptionErrorText is shown with the next prompt only.
	OptionErrorText Option = "error_text"
	// OptionTTYName is the terminal device for curses pinentries.
	OptionTTYName Option = "tty_name"
	// OptionTTYType is the terminal type for curses pinentries.
	OptionTTYType Option = "tty_type"
	// OptionLocale is the LC_CTYPE locale of the caller.
	OptionLocale Option = "locale"
)

var optionPrefixes = map[Option]string{
	OptionDescription: "SETDESC ",
	OptionPrompt:      "SETPROMPT ",
	OptionTitle:       "SETTITLE ",
	OptionOKText:      "SETOK ",
	OptionCancelText:  "SETCANCEL ",
	OptionNotOKText:   "SETNOTOK ",
	OptionErrorText:   "SETERROR ",
	OptionTTYName:     "OPTION ttyname=",
	OptionTTYType:     "OPTION ttytype=",
	OptionLocale:      "OPTION lc-ctype=",
}

// AllOptions lists every supported option in wire-table order.
func AllOptions() []Option {
	return []Option{
		OptionDescription, OptionPrompt, OptionTitle,
		OptionOKText, OptionCancelText, OptionNotOKText, OptionErrorText,
		OptionTTYName, OptionTTYType, OptionLocale,
	}
}

// Prefix returns the command prefix for o.
func (o Option) Prefix() (string, bool) {
	p, ok := optionPrefixes[o]

	return p, ok
}

// Command builds the raw command line that assigns value to o.
func (o Option) Command(value string) (string, error) {
	prefix, ok := o.Prefix()
	if !ok {
		return "", fmt.Errorf("option %q has no command", string(o))
	}

	return prefix + value, nil
}

func (o Option) String() string {
	return string(o)
}
