//go:build linux && (mips || mipsle || mips64 || mips64le || ppc || ppc64 || ppc64le || sparc64)

package filesystem

// These architectures keep three direction bits and a 13-bit size field
const (
	iocWrite     = 4
	iocDirShift  = 29
	iocSizeShift = 16
	iocTypeShift = 8
)
