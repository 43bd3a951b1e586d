package pinentry

import (
	"github.com/wagiedev/pinentry-go/internal/client"
	"github.com/wagiedev/pinentry-go/internal/config"
)

// OptionName names a pinentry setting that is sent as a protocol command.
type OptionName = config.Option

// Supported option names.
const (
	OptionDescription = config.OptionDescription
	OptionPrompt      = config.OptionPrompt
	OptionTitle       = config.OptionTitle
	OptionOKText      = config.OptionOKText
	OptionCancelText  = config.OptionCancelText
	OptionNotOKText   = config.OptionNotOKText
	OptionErrorText   = config.OptionErrorText
	OptionTTYName     = config.OptionTTYName
	OptionTTYType     = config.OptionTTYType
	OptionLocale      = config.OptionLocale
)

// State is the lifecycle position of a Client.
type State = client.State

// Lifecycle states.
const (
	StateUnstarted = client.StateUnstarted
	StateReady     = client.StateReady
	StateClosed    = client.StateClosed
)

// Options configures a pinentry session.
type Options = config.Options

// OptionNames lists every supported option name.
func OptionNames() []OptionName {
	return config.AllOptions()
}
