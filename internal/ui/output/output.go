// Package output constructs termenv outputs with the color handling the
// CLI uses everywhere: NO_COLOR disables styling entirely, otherwise the
// terminal's detected capabilities decide the profile.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile picks the color profile for the current environment.
// NO_COLOR wins over terminal detection.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New wraps w in a termenv.Output using ColorProfile. A nil writer
// falls back to stderr, where log output goes.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
