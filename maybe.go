package elf

import "fmt"

// Code is the set of enumerated header fields that decode into a Maybe.
type Code interface {
	~uint8 | ~uint16
	String() string
}

// Maybe holds a decoded enumerated field. A code missing from this package's tables is not an
// error: it is kept as a raw value so that files for newer architectures, ABIs and object types
// still parse.
type Maybe[T Code] struct {
	v     T
	known bool
}

// Known returns the named value and true, or the raw code and false.
func (m Maybe[T]) Known() (T, bool) {
	return m.v, m.known
}

// IsKnown reports whether the code has a name in this package's tables.
func (m Maybe[T]) IsKnown() bool {
	return m.known
}

// Raw returns the numeric code as it appears in the file.
func (m Maybe[T]) Raw() uint64 {
	return uint64(m.v)
}

// String returns the constant's name for a known code, or "unknown(<code>)" with the code in
// decimal otherwise.
func (m Maybe[T]) String() string {
	if m.known {
		return m.v.String()
	}
	return unknown(uint64(m.v))
}

func unknown(code uint64) string {
	return fmt.Sprintf("unknown(%d)", code)
}

func lookup[T Code](names map[T]string, v T) Maybe[T] {
	_, ok := names[v]
	return Maybe[T]{v: v, known: ok}
}

func name[T Code](names map[T]string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return unknown(uint64(v))
}
