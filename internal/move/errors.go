package move

import (
	"errors"
	"io/fs"
	"os"
)

// Returned when the destination already exists and is not a directory
var ErrRefuseOverwrite = errors.New("refusing to overwrite")

// Reported when either file of a move is not on a CIFS/SMB2 mount
type UnsupportedFilesystemError struct {

	// Either "source" or "destination"
	Side string

	// The filesystem type identifier reported by statfs(2)
	Type uint32
}

func (e *UnsupportedFilesystemError) Error() string {
	return e.Side + " file system is not CIFS/SMB2!"
}

// Strips the operation and path from an *fs.PathError so that callers can prefix their own context phrase
func sysErr(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}

// Determines whether an error from os.Stat means the path does not exist
func isNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
