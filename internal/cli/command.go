package cli

import (
	"maps"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/wagiedev/pinentry-go/internal/config"
)

// BuildArgs constructs the pinentry command line flags.
func BuildArgs(options *config.Options) []string {
	args := make([]string, 0, 5)

	if options.NoGlobalGrab {
		args = append(args, "--no-global-grab")
	}

	if options.Display != "" {
		args = append(args, "--display", options.Display)
	}

	if seconds := timeoutSeconds(options.Timeout); seconds > 0 {
		args = append(args, "--timeout", strconv.Itoa(seconds))
	}

	return args
}

// BuildEnvironment returns the process environment with options.Env applied on top.
func BuildEnvironment(options *config.Options) []string {
	env := os.Environ()

	for _, k := range slices.Sorted(maps.Keys(options.Env)) {
		env = append(env, k+"="+options.Env[k])
	}

	return env
}

// timeoutSeconds converts d to whole seconds, rounding a positive
// sub-second timeout up so it is not silently dropped.
func timeoutSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}

	seconds := int(d / time.Second)
	if d%time.Second != 0 {
		seconds++
	}

	return seconds
}
