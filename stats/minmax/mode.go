package minmax

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// ModeEnv is the environment variable holding the dispatch override.
const ModeEnv = "ALGO_MINMAX_SSE2_MODE"

// Mode is the process-wide dispatch override.
type Mode int

const (
	// ModeDefault dispatches on size and stride.
	ModeDefault Mode = iota

	// ModeForceStrided runs the single-lane vector kernel even for long
	// contiguous input.
	ModeForceStrided

	// ModeForceScalar runs the scalar kernel even when vector kernels exist.
	ModeForceScalar

	// ModeForceFallback behaves like ModeForceScalar and also tells callers,
	// through UseSSE2, to prefer their own non-vector code.
	ModeForceFallback
)

// String returns a short name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeForceStrided:
		return "force-strided"
	case ModeForceScalar:
		return "force-scalar"
	case ModeForceFallback:
		return "force-fallback"
	default:
		return "mode(" + strconv.Itoa(int(m)) + ")"
	}
}

// ParseMode converts an override value to a Mode. Empty, non-numeric and
// out-of-range values give ModeDefault.
func ParseMode(s string) Mode {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return ModeDefault
	}
	m := Mode(n)
	if m < ModeDefault || m > ModeForceFallback {
		return ModeDefault
	}
	return m
}

// currentMode reads ModeEnv on first use. The environment is fixed for the
// process, so every caller observes the same value.
var currentMode = sync.OnceValue(readModeFromEnv)

func readModeFromEnv() Mode {
	return ParseMode(os.Getenv(ModeEnv))
}

// CurrentMode returns the dispatch override in effect for this process.
func CurrentMode() Mode {
	return currentMode()
}

// scalarOnly reports whether the mode bypasses vector kernels.
func (m Mode) scalarOnly() bool {
	return m == ModeForceScalar || m == ModeForceFallback
}
