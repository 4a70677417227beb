//go:build linux

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// Retrieves the filesystem type identifier (the statfs f_type field) for an open file
func Type(f *os.File) (uint32, error) {
	var sfs unix.Statfs_t
	if err := unix.Fstatfs(int(f.Fd()), &sfs); err != nil {
		return 0, err
	}

	// f_type is signed and 32 bits wide on some architectures, so compare on the low 32 bits only
	return uint32(sfs.Type), nil
}
