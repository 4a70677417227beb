package move

import (
	"fmt"
	"os"

	"github.com/macoscontainers/smb2mv/internal/filesystem"
)

// Confirms that both open files reside on a CIFS/SMB2 mount, checking the source first
func ValidateRemote(fsys Filesystem, src *os.File, dst *os.File) error {
	if err := validateSide(fsys, "source", src); err != nil {
		return err
	}
	return validateSide(fsys, "destination", dst)
}

func validateSide(fsys Filesystem, side string, f *os.File) error {
	fsType, err := fsys.Type(f)
	if err != nil {
		return fmt.Errorf("failed to stat %s file system: %w", side, sysErr(err))
	}
	if !filesystem.IsRemote(fsType) {
		return &UnsupportedFilesystemError{Side: side, Type: fsType}
	}
	return nil
}
