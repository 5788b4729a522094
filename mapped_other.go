//go:build !linux
// +build !linux

package tailvec

import "os"

// platformMap falls back to heap storage on non-Linux platforms.
func platformMap(size int) ([]byte, error) {
	return make([]byte, size), nil
}

// platformUnmap leaves heap storage to the garbage collector.
func platformUnmap(b []byte) error {
	return nil
}

func pageSize() int {
	return os.Getpagesize()
}
