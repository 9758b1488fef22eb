package elf

const (
	// MAGIC is the signature every ELF file starts with.
	MAGIC = "\x7fELF"

	// IDENT_PREFIX_SIZE is the number of identification bytes that must be present before the class
	// can be known.
	IDENT_PREFIX_SIZE = 8

	// IDENT_SIZE is the size of the full identification block, padding included.
	IDENT_SIZE = 16

	HEADER32_BYTE_SIZE = 52
	HEADER64_BYTE_SIZE = 64
)

// Offsets into the identification block.
const (
	offClass      = 4
	offData       = 5
	offVersion    = 6
	offOSABI      = 7
	offABIVersion = 8
)

// Offsets that do not depend on the class.
const (
	offType    = 16
	offMachine = 18
	offFileVer = 20
	offEntry   = 24
)

// layout locates the fields that follow the entry point, whose positions shift with the address
// width.
type layout struct {
	addrSize  int
	phoff     int
	shoff     int
	flags     int
	ehsize    int
	phentsize int
	phnum     int
	shentsize int
	shnum     int
	shstrndx  int
	size      int
}

var layout32 = layout{
	addrSize:  4,
	phoff:     28,
	shoff:     32,
	flags:     36,
	ehsize:    40,
	phentsize: 42,
	phnum:     44,
	shentsize: 46,
	shnum:     48,
	shstrndx:  50,
	size:      HEADER32_BYTE_SIZE,
}

var layout64 = layout{
	addrSize:  8,
	phoff:     32,
	shoff:     40,
	flags:     48,
	ehsize:    52,
	phentsize: 54,
	phnum:     56,
	shentsize: 58,
	shnum:     60,
	shstrndx:  62,
	size:      HEADER64_BYTE_SIZE,
}

// HeaderSize returns the size of the fixed file header for the given class, or 0 if the class is
// not one this package understands.
func HeaderSize(c Class) int {
	switch c {
	case ELFCLASS32:
		return HEADER32_BYTE_SIZE
	case ELFCLASS64:
		return HEADER64_BYTE_SIZE
	}
	return 0
}

// Header is a decoded copy of every field of the file header, widened to a common size.
type Header struct {
	Class      Class
	Data       Data
	OSABI      Maybe[OSABI]
	ABIVersion uint8
	Type       Maybe[Type]
	Machine    Maybe[Machine]
	Version    uint32
	Entry      uint64
	PhOff      uint64
	ShOff      uint64
	Flags      uint32
	EhSize     uint16
	PhEntSize  uint16
	PhNum      uint16
	ShEntSize  uint16
	ShNum      uint16
	ShStrNdx   uint16
}

type slicer []byte

func (sp *slicer) next(n int) (b []byte) {
	s := *sp
	b, *sp = s[0:n], s[n:]
	return
}
