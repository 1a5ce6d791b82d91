//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package cli

import "io"

// IsTerminal always reports false on platforms without termios.
func IsTerminal(w io.Writer) bool {
	return false
}
