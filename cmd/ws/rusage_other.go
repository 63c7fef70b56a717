//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package main

// maxRSS is not implemented on this platform.
func maxRSS() (int64, bool) {
	return 0, false
}
