//go:build linux

package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

// https://github.com/torvalds/linux/blob/master/fs/smb/client/cifs_ioctl.h
// #define CIFS_IOCTL_MAGIC        0xCF
// #define CIFS_IOC_COPYCHUNK_FILE _IOW(CIFS_IOCTL_MAGIC, 3, int)
const (
	cifsIoctlMagic = 0xCF
	sizeofInt      = 4

	copyChunkFile = iocWrite<<iocDirShift | sizeofInt<<iocSizeShift | cifsIoctlMagic<<iocTypeShift | 3
)

// Asks the server to copy the full contents of src into dst without moving any data through this host.
// The request is issued once; EINTR and other transient failures are returned to the caller as-is.
func CopyChunk(src *os.File, dst *os.File) error {
	return unix.IoctlSetInt(int(dst.Fd()), copyChunkFile, int(src.Fd()))
}
