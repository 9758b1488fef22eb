package elf

import "encoding/binary"

// Class is the address width recorded at byte 4 of the identification block.
type Class uint8

const (
	ELFCLASSNONE Class = 0
	ELFCLASS32   Class = 1
	ELFCLASS64   Class = 2
)

var classNames = map[Class]string{
	ELFCLASS32: "ELFCLASS32",
	ELFCLASS64: "ELFCLASS64",
}

func (c Class) String() string { return name(classNames, c) }

// Bits returns 32 or 64, or 0 for an unrecognised class.
func (c Class) Bits() int {
	switch c {
	case ELFCLASS32:
		return 32
	case ELFCLASS64:
		return 64
	}
	return 0
}

// DecodeClass decodes an identification class byte.
func DecodeClass(b uint8) Maybe[Class] { return lookup(classNames, Class(b)) }

// Data is the byte order recorded at byte 5 of the identification block.
type Data uint8

const (
	ELFDATANONE Data = 0
	ELFDATA2LSB Data = 1
	ELFDATA2MSB Data = 2
)

var dataNames = map[Data]string{
	ELFDATA2LSB: "ELFDATA2LSB",
	ELFDATA2MSB: "ELFDATA2MSB",
}

func (d Data) String() string { return name(dataNames, d) }

// ByteOrder returns the byte order multi-byte fields are encoded in. It returns nil for an
// unrecognised encoding.
func (d Data) ByteOrder() binary.ByteOrder {
	switch d {
	case ELFDATA2LSB:
		return binary.LittleEndian
	case ELFDATA2MSB:
		return binary.BigEndian
	}
	return nil
}

// DecodeData decodes an identification data encoding byte.
func DecodeData(b uint8) Maybe[Data] { return lookup(dataNames, Data(b)) }
