package move

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Permission bits for a newly created destination file (before umask)
const destinationPerm = 0644

// Determines the concrete destination path for a move and creates it.
//
// If dst does not exist it is created. If dst is a directory the file is created inside it under the
// base name of src. In both cases the file is created exclusively, so an existing file is never truncated.
// A created file is left in place if a later step of the move fails.
func OpenDestination(src string, dst string) (*os.File, string, error) {

	// Determine what, if anything, already exists at the destination path
	info, err := os.Stat(dst)
	if err != nil {
		if !isNotExist(err) {
			return nil, dst, fmt.Errorf("failed to create %s: %w", dst, sysErr(err))
		}

		// Nothing is there yet, so create the destination file itself
		f, err := createExclusive(dst)
		return f, dst, err
	}

	// Refuse to touch anything that is not a directory
	if !info.IsDir() {
		return nil, dst, fmt.Errorf("%w %s", ErrRefuseOverwrite, dst)
	}

	// Place the file inside the destination directory
	target := filepath.Join(dst, filepath.Base(src))
	f, err := createExclusive(target)
	return f, target, err
}

// Creates a new write-only file, reporting an existing file as a refusal to overwrite
func createExclusive(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, destinationPerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w %s", ErrRefuseOverwrite, path)
		}
		return nil, fmt.Errorf("failed to create %s: %w", path, sysErr(err))
	}
	return f, nil
}
