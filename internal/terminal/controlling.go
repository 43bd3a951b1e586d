package terminal

import "os"

// Controlling returns the terminal attached to stdout, falling back to
// stdin and stderr. Absence of a terminal is not an error.
func Controlling() string {
	for _, f := range []*os.File{os.Stdout, os.Stdin, os.Stderr} {
		if name := Name(f); name != "" {
			return name
		}
	}

	return ""
}
