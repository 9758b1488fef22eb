package elf

import (
	"errors"
	"fmt"
)

var (
	// ErrTooShort indicates that the buffer ends before the identification prefix or before the end
	// of the file header for its class. Failures of this kind are reported as *ErrHeaderSize.
	ErrTooShort = errors.New("elf: buffer too short")

	// ErrBadMagic indicates that the buffer does not start with "\x7fELF".
	ErrBadMagic = errors.New("elf: bad magic number")

	// ErrBadWidth indicates that the class byte is neither ELFCLASS32 nor ELFCLASS64.
	ErrBadWidth = errors.New("elf: invalid class")

	// ErrBadEndianness indicates that the data encoding byte is neither ELFDATA2LSB nor ELFDATA2MSB.
	ErrBadEndianness = errors.New("elf: invalid data encoding")

	// ErrBadVersion indicates that the identification version byte is not EV_CURRENT.
	ErrBadVersion = errors.New("elf: invalid identification version")
)

// ErrHeaderSize indicates that the buffer is shorter than the region being validated. Class is
// zero when the identification prefix itself is incomplete.
type ErrHeaderSize struct {
	Class Class
	Need  int
	Have  int
}

func (e *ErrHeaderSize) Error() string {
	if e.Class == 0 {
		return fmt.Sprintf("elf: identification needs %d bytes, have %d", e.Need, e.Have)
	}
	return fmt.Sprintf("elf: %s header needs %d bytes, have %d", e.Class, e.Need, e.Have)
}

func (e *ErrHeaderSize) Unwrap() error {
	return ErrTooShort
}

// ErrIdent indicates a malformed byte in the identification block.
type ErrIdent struct {
	Offset int
	Value  byte
	Err    error
}

func (e *ErrIdent) Error() string {
	return fmt.Sprintf("%s: byte %d is 0x%02x", e.Err, e.Offset, e.Value)
}

func (e *ErrIdent) Unwrap() error {
	return e.Err
}
