package elf

import (
	stdelf "debug/elf"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMachine(t *testing.T) {
	for m, want := range machineNames {
		got := DecodeMachine(uint16(m))
		v, ok := got.Known()
		assert.True(t, ok, want)
		assert.Equal(t, m, v)
		assert.Equal(t, want, got.String())
		assert.Equal(t, uint64(m), got.Raw())
	}
	for code := 0; code <= 0xFFFF; code++ {
		if _, ok := machineNames[Machine(code)]; ok {
			continue
		}
		got := DecodeMachine(uint16(code))
		assert.False(t, got.IsKnown())
		assert.Equal(t, uint64(code), got.Raw())
		if code%257 == 0 {
			assert.Equal(t, fmt.Sprintf("unknown(%d)", code), got.String())
		}
	}
	assert.Len(t, machineNames, 82)
}

func TestDecodeOSABI(t *testing.T) {
	for code := 0; code <= 0xFF; code++ {
		got := DecodeOSABI(uint8(code))
		if want, ok := osabiNames[OSABI(code)]; ok {
			assert.True(t, got.IsKnown())
			assert.Equal(t, want, got.String())
		} else {
			assert.False(t, got.IsKnown())
			assert.Equal(t, fmt.Sprintf("unknown(%d)", code), got.String())
		}
		assert.Equal(t, uint64(code), got.Raw())
	}
	assert.Len(t, osabiNames, 14)
}

func TestDecodeType(t *testing.T) {
	for _, tc := range []struct {
		Code uint16
		Want string
	}{
		{0, "ET_NONE"},
		{1, "ET_REL"},
		{2, "ET_EXEC"},
		{3, "ET_DYN"},
		{4, "ET_CORE"},
		{5, "unknown(5)"},
		{0xfe00, "unknown(65024)"},
		{0xffff, "unknown(65535)"},
	} {
		got := DecodeType(tc.Code)
		assert.Equal(t, tc.Want, got.String())
		assert.Equal(t, tc.Code <= 4, got.IsKnown())
	}
}

func TestDecodeClassAndData(t *testing.T) {
	assert.Equal(t, "ELFCLASS32", DecodeClass(1).String())
	assert.Equal(t, "ELFCLASS64", DecodeClass(2).String())
	assert.Equal(t, "unknown(0)", DecodeClass(0).String())
	assert.Equal(t, "unknown(3)", DecodeClass(3).String())
	assert.Equal(t, 32, ELFCLASS32.Bits())
	assert.Equal(t, 64, ELFCLASS64.Bits())
	assert.Equal(t, 0, Class(7).Bits())

	assert.Equal(t, "ELFDATA2LSB", DecodeData(1).String())
	assert.Equal(t, "ELFDATA2MSB", DecodeData(2).String())
	assert.Equal(t, "unknown(0)", DecodeData(0).String())
	assert.Nil(t, Data(3).ByteOrder())
}

func TestNamesMatchDebugElf(t *testing.T) {
	for _, m := range []Machine{EM_NONE, EM_SPARC, EM_386, EM_MIPS, EM_PPC, EM_PPC64, EM_S390, EM_ARM, EM_SPARCV9, EM_IA_64, EM_X86_64, EM_AARCH64, EM_RISCV, EM_BPF, EM_LOONGARCH} {
		assert.Equal(t, stdelf.Machine(m).String(), m.String())
	}
	for _, a := range []OSABI{ELFOSABI_NONE, ELFOSABI_HPUX, ELFOSABI_NETBSD, ELFOSABI_LINUX, ELFOSABI_SOLARIS, ELFOSABI_FREEBSD, ELFOSABI_OPENBSD, ELFOSABI_ARM, ELFOSABI_STANDALONE} {
		assert.Equal(t, stdelf.OSABI(a).String(), a.String())
	}
	for typ := range typeNames {
		assert.Equal(t, stdelf.Type(typ).String(), typ.String())
	}
	assert.Equal(t, stdelf.ELFCLASS64.String(), ELFCLASS64.String())
	assert.Equal(t, stdelf.ELFDATA2MSB.String(), ELFDATA2MSB.String())
}

func TestMaybeZeroValue(t *testing.T) {
	var m Maybe[Machine]
	assert.False(t, m.IsKnown())
	assert.Equal(t, "unknown(0)", m.String())
}
