//go:build linux

// cfimage_linux.go - mmaps the CF backing image so CFController writes
// land directly in the file with no explicit flush path.

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

func mmapFile(f *os.File) ([]byte, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return unix.Mmap(int(f.Fd()), 0, int(fi.Size()), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func unmapFile(data []byte) error {
	return unix.Munmap(data)
}
