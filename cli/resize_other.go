//go:build !unix

package cli

import "os"

// notifyResize has no resize signal to watch on this platform; the surface
// keeps the size it started with.
func notifyResize() (<-chan os.Signal, func()) {
	return nil, func() {}
}
