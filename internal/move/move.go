// Package move performs a server-side move of a single file on a CIFS/SMB2 mount.
//
// The destination is created, the CIFS client is asked to copy the source into it on the
// server, and only then is the source removed. If removing the source fails the destination
// is kept, leaving both copies in place.
package move

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// The kernel-facing operations a move depends on
type Filesystem interface {

	// Retrieves the statfs(2) filesystem type identifier for an open file
	Type(f *os.File) (uint32, error)

	// Asks the server to copy the full contents of src into dst
	CopyChunk(src *os.File, dst *os.File) error
}

// Provides functionality for moving files between paths on CIFS/SMB2 mounts
type Mover struct {
	fsys Filesystem
	log  zerolog.Logger

	// Removes the source once the copy has succeeded
	remove func(path string) error
}

// Option sets various options for New
type Option func(*Mover)

// WithLogger sets the logger used to trace each step of a move
func WithLogger(log zerolog.Logger) Option {
	return func(m *Mover) {
		m.log = log
	}
}

// Creates a Mover that issues its filesystem requests through fsys
func New(fsys Filesystem, opts ...Option) *Mover {
	m := &Mover{
		fsys:   fsys,
		log:    zerolog.Nop(),
		remove: os.Remove,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Moves src to dst, or into dst if dst is an existing directory.
//
// Both files are always closed before returning. When a close fails its error is aggregated with
// any earlier failure into a *multierror.Error, so the caller sees every problem that occurred.
func (m *Mover) Move(src string, dst string) (err error) {

	// Open the source first so that a missing source never leaves a destination behind
	srcFile, err := os.OpenFile(src, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, sysErr(err))
	}
	defer closeFile(srcFile, "src", &err)
	m.log.Debug().Str("path", src).Msg("opened source")

	// Resolve and create the destination
	dstFile, target, err := OpenDestination(src, dst)
	if err != nil {
		return err
	}
	defer closeFile(dstFile, "dst", &err)
	m.log.Debug().Str("path", target).Msg("created destination")

	// The copy-chunk request is only meaningful on CIFS/SMB2 mounts
	if err := ValidateRemote(m.fsys, srcFile, dstFile); err != nil {
		return err
	}

	// Have the server duplicate the data
	if err := m.fsys.CopyChunk(srcFile, dstFile); err != nil {
		return fmt.Errorf("server-side-copy failed: %w", sysErr(err))
	}
	m.log.Debug().Str("src", src).Str("dst", target).Msg("server-side copy complete")

	// Only remove the source once the server has confirmed the copy
	if err := m.remove(src); err != nil {
		m.log.Debug().Str("src", src).Str("dst", target).Msg("source and destination both remain")
		return fmt.Errorf("unable to remove source file: %w", sysErr(err))
	}
	m.log.Debug().Str("path", src).Msg("removed source")

	return nil
}

// Closes f and appends any failure to the error being returned by the enclosing function
func closeFile(f *os.File, name string, err *error) {
	if cerr := f.Close(); cerr != nil {
		*err = multierror.Append(*err, fmt.Errorf("failed to close %s file: %w", name, sysErr(cerr)))
	}
}
