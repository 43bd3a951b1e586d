package protocol

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	// VerbGetPin asks the peer for a secret.
	VerbGetPin = "GETPIN"
	// VerbConfirm asks the peer for a yes/no decision.
	VerbConfirm = "CONFIRM"
	// VerbMessage shows the description with a single OK button.
	VerbMessage = "MESSAGE"

	// FlagOneButton turns CONFIRM into a single-button dialog.
	FlagOneButton = "--one-button"

	setVerbPrefix = "SET"
	dataPrefix    = "D "
)

// Greetings are the handshake lines a pinentry may open with.
var Greetings = []string{
	"OK Your orders please",
	"OK Pleased to meet you",
}

var (
	statusRe    = regexp.MustCompile(`^(OK|ERR)`)
	errStatusRe = regexp.MustCompile(`^ERR`)
	errRe       = regexp.MustCompile(`^ERR\s+(\d+)\s+(.*)$`)
)

// IsGreeting reports whether line is an acceptable handshake. libassuan
// servers may append ", process <pid>" to the greeting.
func IsGreeting(line string) bool {
	line = strings.TrimRight(line, "\r\n")

	for _, g := range Greetings {
		if line == g || strings.HasPrefix(line, g+", ") {
			return true
		}
	}

	return false
}

// IsStatus reports whether line terminates a response.
func IsStatus(line string) bool {
	return statusRe.MatchString(line)
}

// IsErrStatus reports whether line is an error status line, well-formed or not.
func IsErrStatus(line string) bool {
	return errStatusRe.MatchString(line)
}

// ParseError extracts the code and message of an "ERR <code> <message>" line.
func ParseError(line string) (code int, message string, ok bool) {
	m := errRe.FindStringSubmatch(strings.TrimRight(line, "\r\n"))
	if m == nil {
		return 0, "", false
	}

	code, err := strconv.Atoi(m[1])
	if err != nil {
		// Code does not fit in an int; keep the line recognisable.
		code = -1
	}

	return code, m[2], true
}

// Escape percent-encodes every byte of s as %xx with lowercase hex digits.
func Escape(s string) string {
	var b strings.Builder

	b.Grow(len(s) * 3)

	for i := 0; i < len(s); i++ {
		fmt.Fprintf(&b, "%%%02x", s[i])
	}

	return b.String()
}

// Unescape reverses Escape and any other %xx sequences in s.
func Unescape(s string) (string, error) {
	var b strings.Builder

	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])

			continue
		}

		if i+2 >= len(s) {
			return "", fmt.Errorf("truncated escape at offset %d", i)
		}

		v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid escape %q at offset %d", s[i:i+3], i)
		}

		b.WriteByte(byte(v))
		i += 2
	}

	return b.String(), nil
}

// EncodeCommand applies the SET-verb escaping rule to a raw command line.
// For verbs starting with SET the argument after the first space is
// escaped; any other command is returned verbatim.
func EncodeCommand(line string) string {
	if !strings.HasPrefix(line, setVerbPrefix) {
		return line
	}

	verb, arg, found := strings.Cut(line, " ")
	if !found {
		return line
	}

	return verb + " " + Escape(arg)
}

// DecodeData un-escapes a GETPIN payload. Only %25 is decoded; the peer
// escapes nothing else that we interpret.
func DecodeData(payload string) string {
	return strings.ReplaceAll(payload, "%25", "%")
}

// DataPayload returns the raw payload of a "D <data>" line.
func DataPayload(line string) (string, bool) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, dataPrefix) {
		return "", false
	}

	return line[len(dataPrefix):], true
}
