package triple

// ArchType identifies the architecture component of a target triple.
type ArchType uint8

const (
	UnknownArch ArchType = iota
	X86
	X86_64
	ARM
	AArch64
	Sparc   // 32-bit SPARC
	Sparcv9 // 64-bit SPARC
)

// String returns the canonical arch name used as a registry key.
func (a ArchType) String() string {
	switch a {
	case X86:
		return "x86"
	case X86_64:
		return "x86-64"
	case ARM:
		return "arm"
	case AArch64:
		return "aarch64"
	case Sparc:
		return "sparc"
	case Sparcv9:
		return "sparcv9"
	default:
		return "unknown"
	}
}

// PointerBits reports the native pointer width, 0 for UnknownArch.
func (a ArchType) PointerBits() int {
	switch a {
	case X86, ARM, Sparc:
		return 32
	case X86_64, AArch64, Sparcv9:
		return 64
	default:
		return 0
	}
}

// ParseArch maps the arch component of a triple to its ArchType.
func ParseArch(name string) ArchType {
	switch name {
	case "i386", "i486", "i586", "i686", "x86":
		return X86
	case "x86_64", "amd64", "x86-64":
		return X86_64
	case "arm":
		return ARM
	case "aarch64", "arm64":
		return AArch64
	case "sparc":
		return Sparc
	case "sparcv9", "sparc64":
		return Sparcv9
	default:
		return UnknownArch
	}
}
