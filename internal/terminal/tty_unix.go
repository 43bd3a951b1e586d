//go:build unix

package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// Name returns the device path of the terminal behind f, or "" when f is
// not a terminal or the name cannot be resolved.
func Name(f *os.File) string {
	if f == nil {
		return ""
	}

	fd := f.Fd()
	if !isatty.IsTerminal(fd) {
		return ""
	}

	var st unix.Stat_t
	if err := unix.Fstat(int(fd), &st); err != nil || st.Mode&unix.S_IFMT != unix.S_IFCHR {
		return ""
	}

	for _, link := range []string{
		"/proc/self/fd/" + strconv.Itoa(int(fd)),
		"/dev/fd/" + strconv.Itoa(int(fd)),
	} {
		if name, err := os.Readlink(link); err == nil && sameDevice(name, uint64(st.Rdev)) {
			return name
		}
	}

	return ""
}

func sameDevice(path string, rdev uint64) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}

	return uint64(st.Rdev) == rdev
}
