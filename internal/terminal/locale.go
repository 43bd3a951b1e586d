package terminal

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// localeVars are consulted in POSIX precedence order for LC_CTYPE.
var localeVars = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Locale returns "<language>.<encoding>" for the active LC_CTYPE locale,
// or "" when the environment names none or only the C/POSIX locale.
func Locale() string {
	for _, key := range localeVars {
		if v := os.Getenv(key); v != "" {
			return ParseLocale(v)
		}
	}

	return ""
}

// ParseLocale normalises a POSIX locale name such as "en_US.UTF-8@euro"
// into "en_US.UTF-8". Names without an encoding or with an unknown
// language yield "".
func ParseLocale(value string) string {
	value, _, _ = strings.Cut(value, "@")

	lang, encoding, found := strings.Cut(value, ".")
	if !found || lang == "" || encoding == "" {
		return ""
	}

	if lang == "C" || lang == "POSIX" {
		return ""
	}

	if _, err := language.Parse(strings.ReplaceAll(lang, "_", "-")); err != nil {
		return ""
	}

	return lang + "." + encoding
}
