package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/wagiedev/pinentry-go/internal/config"
)

// Discover resolves the pinentry executable.
//
// An executable containing a path separator is used as-is after an
// existence check; a bare name is searched in PATH. Empty means
// config.DefaultExecutable.
func Discover(log *slog.Logger, executable string) (string, error) {
	if log == nil {
		log = config.DiscardLogger()
	}

	if executable == "" {
		executable = config.DefaultExecutable
	}

	if strings.ContainsRune(executable, os.PathSeparator) {
		log.Debug("Using explicit pinentry path", "path", executable)

		if _, err := os.Stat(executable); err != nil {
			return "", fmt.Errorf("stat %s: %w", executable, err)
		}

		return executable, nil
	}

	log.Debug("Searching for pinentry in PATH", "name", executable)

	path, err := exec.LookPath(executable)
	if err != nil {
		log.Debug("pinentry not found in PATH", "name", executable, "error", err)

		return "", err
	}

	log.Debug("Found pinentry in PATH", "path", path)

	return path, nil
}
