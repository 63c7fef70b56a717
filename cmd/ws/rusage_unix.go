//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package main

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// maxRSS returns the peak resident set size of the process in KiB.
func maxRSS() (int64, bool) {
	var ru unix.Rusage
	if unix.Getrusage(unix.RUSAGE_SELF, &ru) != nil {
		return 0, false
	}
	rss := int64(ru.Maxrss)
	// Darwin reports bytes rather than kilobytes.
	if runtime.GOOS == "darwin" {
		rss /= 1024
	}
	return rss, true
}
