package elf

import (
	"bytes"
	"testing"

	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/require"
)

type header32 struct {
	Ident     [IDENT_SIZE]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint32
	PhOff     uint32
	ShOff     uint32
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

type header64 struct {
	Ident     [IDENT_SIZE]byte
	Type      uint16
	Machine   uint16
	Version   uint32
	Entry     uint64
	PhOff     uint64
	ShOff     uint64
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

// fixture describes a file header to be packed in the byte order given by data.
type fixture struct {
	class      Class
	data       Data
	osabi      uint8
	abiVersion uint8
	typ        uint16
	machine    uint16
	version    uint32
	entry      uint64
	phoff      uint64
	shoff      uint64
	flags      uint32
	ehsize     uint16
	phentsize  uint16
	phnum      uint16
	shentsize  uint16
	shnum      uint16
	shstrndx   uint16
}

func (f fixture) pack(t testing.TB) []byte {
	t.Helper()
	ident := [IDENT_SIZE]byte{0x7f, 'E', 'L', 'F', byte(f.class), byte(f.data), 1, f.osabi, f.abiVersion}

	var v interface{}
	if f.class == ELFCLASS32 {
		v = &header32{
			Ident: ident, Type: f.typ, Machine: f.machine, Version: f.version,
			Entry: uint32(f.entry), PhOff: uint32(f.phoff), ShOff: uint32(f.shoff),
			Flags: f.flags, EhSize: f.ehsize, PhEntSize: f.phentsize, PhNum: f.phnum,
			ShEntSize: f.shentsize, ShNum: f.shnum, ShStrNdx: f.shstrndx,
		}
	} else {
		v = &header64{
			Ident: ident, Type: f.typ, Machine: f.machine, Version: f.version,
			Entry: f.entry, PhOff: f.phoff, ShOff: f.shoff,
			Flags: f.flags, EhSize: f.ehsize, PhEntSize: f.phentsize, PhNum: f.phnum,
			ShEntSize: f.shentsize, ShNum: f.shnum, ShStrNdx: f.shstrndx,
		}
	}
	var buf bytes.Buffer
	require.NoError(t, struc.PackWithOrder(&buf, v, f.data.ByteOrder()))
	require.Equal(t, HeaderSize(f.class), buf.Len())
	return buf.Bytes()
}

// x86_64Exec mirrors the header of a typical statically linked amd64 Linux executable.
var x86_64Exec = fixture{
	class:      ELFCLASS64,
	data:       ELFDATA2LSB,
	osabi:      uint8(ELFOSABI_LINUX),
	abiVersion: 3,
	typ:        uint16(ET_EXEC),
	machine:    uint16(EM_X86_64),
	version:    1,
	entry:      0x401650,
	phoff:      64,
	shoff:      0xc4a28,
	ehsize:     HEADER64_BYTE_SIZE,
	phentsize:  56,
	phnum:      10,
	shentsize:  64,
	shnum:      32,
	shstrndx:   31,
}

// ppcRel is a big-endian 32-bit PowerPC object whose header fields all hold distinct values.
var ppcRel = fixture{
	class:      ELFCLASS32,
	data:       ELFDATA2MSB,
	osabi:      uint8(ELFOSABI_NONE),
	abiVersion: 2,
	typ:        uint16(ET_REL),
	machine:    uint16(EM_PPC),
	version:    1,
	entry:      0x10000074,
	phoff:      52,
	shoff:      0x2f4,
	flags:      0x8000,
	ehsize:     HEADER32_BYTE_SIZE,
	phentsize:  32,
	phnum:      3,
	shentsize:  40,
	shnum:      12,
	shstrndx:   11,
}
