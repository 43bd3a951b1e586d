package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOption_Prefix(t *testing.T) {
	tests := []struct {
		option Option
		want   string
	}{
		{OptionDescription, "SETDESC "},
		{OptionPrompt, "SETPROMPT "},
		{OptionTitle, "SETTITLE "},
		{OptionOKText, "SETOK "},
		{OptionCancelText, "SETCANCEL "},
		{OptionNotOKText, "SETNOTOK "},
		{OptionErrorText, "SETERROR "},
		{OptionTTYName, "OPTION ttyname="},
		{OptionTTYType, "OPTION ttytype="},
		{OptionLocale, "OPTION lc-ctype="},
	}

	for _, tt := range tests {
		t.Run(tt.option.String(), func(t *testing.T) {
			got, ok := tt.option.Prefix()
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	require.Len(t, AllOptions(), len(tests))
}

func TestOption_Command(t *testing.T) {
	cmd, err := OptionLocale.Command("en_US.UTF-8")
	require.NoError(t, err)
	require.Equal(t, "OPTION lc-ctype=en_US.UTF-8", cmd)

	_, err = Option("colour").Command("red")
	require.Error(t, err)
}
