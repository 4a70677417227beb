//go:build !linux

package filesystem

import "os"

// Retrieves the filesystem type identifier (the statfs f_type field) for an open file
func Type(f *os.File) (uint32, error) {
	return 0, ErrUnsupported
}

// Asks the server to copy the full contents of src into dst without moving any data through this host.
// The request is issued once; EINTR and other transient failures are returned to the caller as-is.
func CopyChunk(src *os.File, dst *os.File) error {
	return ErrUnsupported
}
