package elf

// Type is the object file type.
type Type uint16

const (
	ET_NONE Type = 0
	ET_REL  Type = 1
	ET_EXEC Type = 2
	ET_DYN  Type = 3
	ET_CORE Type = 4
)

var typeNames = map[Type]string{
	ET_NONE: "ET_NONE",
	ET_REL:  "ET_REL",
	ET_EXEC: "ET_EXEC",
	ET_DYN:  "ET_DYN",
	ET_CORE: "ET_CORE",
}

func (t Type) String() string { return name(typeNames, t) }

// DecodeType decodes the object file type field.
func DecodeType(v uint16) Maybe[Type] { return lookup(typeNames, Type(v)) }
