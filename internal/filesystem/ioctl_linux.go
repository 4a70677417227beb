//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !ppc && !ppc64 && !ppc64le && !sparc64

package filesystem

// Generic Linux ioctl request encoding (asm-generic/ioctl.h)
const (
	iocWrite     = 1
	iocDirShift  = 30
	iocSizeShift = 16
	iocTypeShift = 8
)
