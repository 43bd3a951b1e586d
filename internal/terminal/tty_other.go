//go:build !unix

package terminal

import "os"

// Name is not supported on this platform and always returns "".
func Name(_ *os.File) string {
	return ""
}
