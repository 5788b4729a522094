//go:build linux
// +build linux

package tailvec

import (
	"golang.org/x/sys/unix"
)

// platformMap maps an anonymous, private, read-write region of size bytes.
func platformMap(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
}

// platformUnmap releases a region returned by platformMap.
func platformUnmap(b []byte) error {
	return unix.Munmap(b)
}

func pageSize() int {
	return unix.Getpagesize()
}
