/*
Copyright (c) 2026 The please-build Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package elf

import "encoding/binary"

// Object provides read access to the file header of an ELF object held in memory.
// It borrows the slice it was created from and never modifies or copies it; every
// accessor decodes its field from the slice on each call.
//
// Example:
//
//	data, err := os.ReadFile("/bin/true")
//	if err != nil {
//	    return err
//	}
//	obj, err := elf.NewObject(data)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(obj.Type(), obj.Machine(), obj.Class(), obj.Data())
type Object struct {
	// data is the caller's buffer. It is at least as long as the file header for the class
	// recorded in it.
	data []byte
}

// NewObject validates the identification block and file header size of data and returns an
// Object reading from it. The checks run in order: identification length, magic number, class,
// data encoding, identification version, and finally the header length for the class.
func NewObject(data []byte) (Object, error) {
	if len(data) < IDENT_PREFIX_SIZE {
		return Object{}, &ErrHeaderSize{Need: IDENT_PREFIX_SIZE, Have: len(data)}
	}
	if string(data[:len(MAGIC)]) != MAGIC {
		return Object{}, ErrBadMagic
	}
	class := Class(data[offClass])
	if class != ELFCLASS32 && class != ELFCLASS64 {
		return Object{}, &ErrIdent{Offset: offClass, Value: data[offClass], Err: ErrBadWidth}
	}
	if d := Data(data[offData]); d != ELFDATA2LSB && d != ELFDATA2MSB {
		return Object{}, &ErrIdent{Offset: offData, Value: data[offData], Err: ErrBadEndianness}
	}
	if data[offVersion] != 1 {
		return Object{}, &ErrIdent{Offset: offVersion, Value: data[offVersion], Err: ErrBadVersion}
	}
	if need := HeaderSize(class); len(data) < need {
		return Object{}, &ErrHeaderSize{Class: class, Need: need, Have: len(data)}
	}
	return Object{data: data}, nil
}

func (o Object) layout() *layout {
	if o.Class() == ELFCLASS64 {
		return &layout64
	}
	return &layout32
}

func (o Object) u16(off int) uint16 {
	return o.ByteOrder().Uint16(o.data[off : off+2])
}

func (o Object) u32(off int) uint32 {
	return o.ByteOrder().Uint32(o.data[off : off+4])
}

// addr reads an address-sized field and widens it to 64 bits.
func (o Object) addr(l *layout, off int) uint64 {
	if l.addrSize == 4 {
		return uint64(o.u32(off))
	}
	return o.ByteOrder().Uint64(o.data[off : off+8])
}

// Ident returns a copy of the 16-byte identification block.
func (o Object) Ident() (ident [IDENT_SIZE]byte) {
	copy(ident[:], o.data)
	return
}

// Class returns the address width of the object.
func (o Object) Class() Class {
	return Class(o.data[offClass])
}

// Data returns the byte order of the object.
func (o Object) Data() Data {
	return Data(o.data[offData])
}

// ByteOrder returns the byte order every multi-byte field is read with.
func (o Object) ByteOrder() binary.ByteOrder {
	return o.Data().ByteOrder()
}

func (o Object) OSABI() Maybe[OSABI] {
	return DecodeOSABI(o.data[offOSABI])
}

func (o Object) ABIVersion() uint8 {
	return o.data[offABIVersion]
}

func (o Object) Type() Maybe[Type] {
	return DecodeType(o.u16(offType))
}

func (o Object) Machine() Maybe[Machine] {
	return DecodeMachine(o.u16(offMachine))
}

// Version returns the 32-bit object file version, which is distinct from the identification
// version byte.
func (o Object) Version() uint32 {
	return o.u32(offFileVer)
}

// Entry returns the virtual address control is first transferred to.
func (o Object) Entry() uint64 {
	return o.addr(o.layout(), offEntry)
}

// PhOff returns the file offset of the program header table.
func (o Object) PhOff() uint64 {
	l := o.layout()
	return o.addr(l, l.phoff)
}

// ShOff returns the file offset of the section header table.
func (o Object) ShOff() uint64 {
	l := o.layout()
	return o.addr(l, l.shoff)
}

// Flags returns the processor-specific flags.
func (o Object) Flags() uint32 {
	return o.u32(o.layout().flags)
}

// EhSize returns the size of the file header as recorded in the header itself.
func (o Object) EhSize() uint16 {
	return o.u16(o.layout().ehsize)
}

func (o Object) PhEntSize() uint16 {
	return o.u16(o.layout().phentsize)
}

func (o Object) PhNum() uint16 {
	return o.u16(o.layout().phnum)
}

func (o Object) ShEntSize() uint16 {
	return o.u16(o.layout().shentsize)
}

func (o Object) ShNum() uint16 {
	return o.u16(o.layout().shnum)
}

// ShStrNdx returns the index of the section header holding section names.
func (o Object) ShStrNdx() uint16 {
	return o.u16(o.layout().shstrndx)
}

// Header decodes every field of the file header in one pass.
func (o Object) Header() Header {
	l := o.layout()
	order := o.ByteOrder()
	addr := func(b []byte) uint64 {
		if l.addrSize == 4 {
			return uint64(order.Uint32(b))
		}
		return order.Uint64(b)
	}

	s := slicer(o.data[IDENT_SIZE:l.size])
	h := Header{
		Class:      o.Class(),
		Data:       o.Data(),
		OSABI:      o.OSABI(),
		ABIVersion: o.ABIVersion(),
	}
	h.Type = DecodeType(order.Uint16(s.next(2)))
	h.Machine = DecodeMachine(order.Uint16(s.next(2)))
	h.Version = order.Uint32(s.next(4))
	h.Entry = addr(s.next(l.addrSize))
	h.PhOff = addr(s.next(l.addrSize))
	h.ShOff = addr(s.next(l.addrSize))
	h.Flags = order.Uint32(s.next(4))
	h.EhSize = order.Uint16(s.next(2))
	h.PhEntSize = order.Uint16(s.next(2))
	h.PhNum = order.Uint16(s.next(2))
	h.ShEntSize = order.Uint16(s.next(2))
	h.ShNum = order.Uint16(s.next(2))
	h.ShStrNdx = order.Uint16(s.next(2))
	return h
}
