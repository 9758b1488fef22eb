package elf

// OSABI identifies the operating system or ABI extensions the object targets.
type OSABI uint8

const (
	ELFOSABI_NONE       OSABI = 0
	ELFOSABI_HPUX       OSABI = 1
	ELFOSABI_NETBSD     OSABI = 2
	ELFOSABI_LINUX      OSABI = 3
	ELFOSABI_SOLARIS    OSABI = 6
	ELFOSABI_AIX        OSABI = 7
	ELFOSABI_IRIX       OSABI = 8
	ELFOSABI_FREEBSD    OSABI = 9
	ELFOSABI_TRU64      OSABI = 10
	ELFOSABI_MODESTO    OSABI = 11
	ELFOSABI_OPENBSD    OSABI = 12
	ELFOSABI_ARM_AEABI  OSABI = 64
	ELFOSABI_ARM        OSABI = 97
	ELFOSABI_STANDALONE OSABI = 255
)

var osabiNames = map[OSABI]string{
	ELFOSABI_NONE:       "ELFOSABI_NONE",
	ELFOSABI_HPUX:       "ELFOSABI_HPUX",
	ELFOSABI_NETBSD:     "ELFOSABI_NETBSD",
	ELFOSABI_LINUX:      "ELFOSABI_LINUX",
	ELFOSABI_SOLARIS:    "ELFOSABI_SOLARIS",
	ELFOSABI_AIX:        "ELFOSABI_AIX",
	ELFOSABI_IRIX:       "ELFOSABI_IRIX",
	ELFOSABI_FREEBSD:    "ELFOSABI_FREEBSD",
	ELFOSABI_TRU64:      "ELFOSABI_TRU64",
	ELFOSABI_MODESTO:    "ELFOSABI_MODESTO",
	ELFOSABI_OPENBSD:    "ELFOSABI_OPENBSD",
	ELFOSABI_ARM_AEABI:  "ELFOSABI_ARM_AEABI",
	ELFOSABI_ARM:        "ELFOSABI_ARM",
	ELFOSABI_STANDALONE: "ELFOSABI_STANDALONE",
}

func (a OSABI) String() string { return name(osabiNames, a) }

// DecodeOSABI decodes the OS/ABI identification byte.
func DecodeOSABI(b uint8) Maybe[OSABI] { return lookup(osabiNames, OSABI(b)) }
