package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscape_EveryByte(t *testing.T) {
	require.Equal(t, "%48%69%21", Escape("Hi!"))
	require.Equal(t, "%25%20%0a", Escape("% \n"))
	require.Equal(t, "%e3%83%86", Escape("テ"))
	require.Empty(t, Escape(""))
}

func TestEscape_RoundTrip(t *testing.T) {
	tests := []string{
		"",
		"plain",
		"100% sure",
		"two  spaces",
		"line one\nline two",
		"carriage\r\nreturn",
		"Enter a password.\n Choose Wisely! テ  デ  ト  ド",
		"%25 already escaped",
		"\x00\x01\xff",
	}

	for _, tt := range tests {
		got, err := Unescape(Escape(tt))
		require.NoError(t, err)
		require.Equal(t, tt, got)
	}
}

func FuzzEscape_RoundTrip(f *testing.F) {
	f.Add("100%")
	f.Add("a b\nc")
	f.Add("\xff\xfe")

	f.Fuzz(func(t *testing.T, s string) {
		got, err := Unescape(Escape(s))
		require.NoError(t, err)
		require.Equal(t, s, got)
	})
}

func TestUnescape_Invalid(t *testing.T) {
	_, err := Unescape("abc%2")
	require.Error(t, err)

	_, err = Unescape("%zz")
	require.Error(t, err)
}

func TestEncodeCommand(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"set verb escapes argument", "SETDESC Hi there", "SETDESC %48%69%20%74%68%65%72%65"},
		{"escapes only after first space", "SETPROMPT PIN: ", "SETPROMPT %50%49%4e%3a%20"},
		{"empty argument", "SETDESC ", "SETDESC "},
		{"set verb without argument", "SETDESC", "SETDESC"},
		{"option verbatim", "OPTION ttyname=/dev/pts/1", "OPTION ttyname=/dev/pts/1"},
		{"getpin verbatim", "GETPIN", "GETPIN"},
		{"confirm flag verbatim", "CONFIRM --one-button", "CONFIRM --one-button"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, EncodeCommand(tt.in))
		})
	}
}

func TestDecodeData_OnlyPercent(t *testing.T) {
	require.Equal(t, "p%ercent", DecodeData("p%25ercent"))
	require.Equal(t, "a%20b", DecodeData("a%20b"))
	require.Equal(t, "%%", DecodeData("%25%25"))
}

func TestDataPayload(t *testing.T) {
	payload, ok := DataPayload("D p%25ercent")
	require.True(t, ok)
	require.Equal(t, "p%25ercent", payload)

	payload, ok = DataPayload("D ")
	require.True(t, ok)
	require.Empty(t, payload)

	_, ok = DataPayload("OK")
	require.False(t, ok)

	_, ok = DataPayload("S PASSWORD_FROM_CACHE")
	require.False(t, ok)
}

func TestIsStatus(t *testing.T) {
	require.True(t, IsStatus("OK"))
	require.True(t, IsStatus("OK closing connection"))
	require.True(t, IsStatus("ERR 83886179 Operation cancelled"))
	require.False(t, IsStatus("D secret"))
	require.False(t, IsStatus("# comment"))
	require.False(t, IsStatus(" OK"))
}

func TestParseError(t *testing.T) {
	code, msg, ok := ParseError("ERR 83886179 Operation cancelled")
	require.True(t, ok)
	require.Equal(t, 83886179, code)
	require.Equal(t, "Operation cancelled", msg)

	code, msg, ok = ParseError("ERR   83886194    Not confirmed\n")
	require.True(t, ok)
	require.Equal(t, 83886194, code)
	require.Equal(t, "Not confirmed", msg)

	_, _, ok = ParseError("OK")
	require.False(t, ok)

	_, _, ok = ParseError("ERR nonsense")
	require.False(t, ok)
}

func TestParseError_MalformedStatus(t *testing.T) {
	for _, line := range []string{
		"ERR",
		"ERR 83886179",
		"ERR abc Operation cancelled",
		"ERR83886179 Operation cancelled",
	} {
		t.Run(line, func(t *testing.T) {
			_, _, ok := ParseError(line)
			require.False(t, ok)
			require.True(t, IsStatus(line))
			require.True(t, IsErrStatus(line))
		})
	}
}

func TestIsErrStatus(t *testing.T) {
	require.True(t, IsErrStatus("ERR 83886179 Operation cancelled"))
	require.False(t, IsErrStatus("OK"))
	require.False(t, IsErrStatus("D ERR"))
	require.False(t, IsErrStatus(" ERR 1 x"))
}

func TestIsGreeting(t *testing.T) {
	require.True(t, IsGreeting("OK Your orders please"))
	require.True(t, IsGreeting("OK Pleased to meet you\n"))
	require.True(t, IsGreeting("OK Pleased to meet you, process 4242"))
	require.False(t, IsGreeting("OK"))
	require.False(t, IsGreeting("ERR 1 no"))
	require.False(t, IsGreeting("OK Pleased to meet youX"))
}
