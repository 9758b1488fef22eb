package elf

// Machine is the target architecture of the object.
type Machine uint16

const (
	EM_NONE         Machine = 0
	EM_M32          Machine = 1
	EM_SPARC        Machine = 2
	EM_386          Machine = 3
	EM_68K          Machine = 4
	EM_88K          Machine = 5
	EM_860          Machine = 7
	EM_MIPS         Machine = 8
	EM_S370         Machine = 9
	EM_MIPS_RS3_LE  Machine = 10
	EM_PARISC       Machine = 15
	EM_VPP500       Machine = 17
	EM_SPARC32PLUS  Machine = 18
	EM_960          Machine = 19
	EM_PPC          Machine = 20
	EM_PPC64        Machine = 21
	EM_S390         Machine = 22
	EM_V800         Machine = 36
	EM_FR20         Machine = 37
	EM_RH32         Machine = 38
	EM_RCE          Machine = 39
	EM_ARM          Machine = 40
	EM_ALPHA_STD    Machine = 41
	EM_SH           Machine = 42
	EM_SPARCV9      Machine = 43
	EM_TRICORE      Machine = 44
	EM_ARC          Machine = 45
	EM_H8_300       Machine = 46
	EM_H8_300H      Machine = 47
	EM_H8S          Machine = 48
	EM_H8_500       Machine = 49
	EM_IA_64        Machine = 50
	EM_MIPS_X       Machine = 51
	EM_COLDFIRE     Machine = 52
	EM_68HC12       Machine = 53
	EM_MMA          Machine = 54
	EM_PCP          Machine = 55
	EM_NCPU         Machine = 56
	EM_NDR1         Machine = 57
	EM_STARCORE     Machine = 58
	EM_ME16         Machine = 59
	EM_ST100        Machine = 60
	EM_TINYJ        Machine = 61
	EM_X86_64       Machine = 62
	EM_PDSP         Machine = 63
	EM_FX66         Machine = 66
	EM_ST9PLUS      Machine = 67
	EM_ST7          Machine = 68
	EM_68HC16       Machine = 69
	EM_68HC11       Machine = 70
	EM_68HC08       Machine = 71
	EM_68HC05       Machine = 72
	EM_SVX          Machine = 73
	EM_ST19         Machine = 74
	EM_VAX          Machine = 75
	EM_CRIS         Machine = 76
	EM_JAVELIN      Machine = 77
	EM_FIREPATH     Machine = 78
	EM_ZSP          Machine = 79
	EM_MMIX         Machine = 80
	EM_HUANY        Machine = 81
	EM_PRISM        Machine = 82
	EM_AVR          Machine = 83
	EM_FR30         Machine = 84
	EM_D10V         Machine = 85
	EM_D30V         Machine = 86
	EM_V850         Machine = 87
	EM_M32R         Machine = 88
	EM_MN10300      Machine = 89
	EM_MN10200      Machine = 90
	EM_PJ           Machine = 91
	EM_OPENRISC     Machine = 92
	EM_ARC_COMPACT  Machine = 93
	EM_XTENSA       Machine = 94
	EM_ALTERA_NIOS2 Machine = 113
	EM_AARCH64      Machine = 183
	EM_TILEPRO      Machine = 188
	EM_MICROBLAZE   Machine = 189
	EM_TILEGX       Machine = 191
	EM_RISCV        Machine = 243
	EM_BPF          Machine = 247
	EM_LOONGARCH    Machine = 258
)

var machineNames = map[Machine]string{
	EM_NONE:         "EM_NONE",
	EM_M32:          "EM_M32",
	EM_SPARC:        "EM_SPARC",
	EM_386:          "EM_386",
	EM_68K:          "EM_68K",
	EM_88K:          "EM_88K",
	EM_860:          "EM_860",
	EM_MIPS:         "EM_MIPS",
	EM_S370:         "EM_S370",
	EM_MIPS_RS3_LE:  "EM_MIPS_RS3_LE",
	EM_PARISC:       "EM_PARISC",
	EM_VPP500:       "EM_VPP500",
	EM_SPARC32PLUS:  "EM_SPARC32PLUS",
	EM_960:          "EM_960",
	EM_PPC:          "EM_PPC",
	EM_PPC64:        "EM_PPC64",
	EM_S390:         "EM_S390",
	EM_V800:         "EM_V800",
	EM_FR20:         "EM_FR20",
	EM_RH32:         "EM_RH32",
	EM_RCE:          "EM_RCE",
	EM_ARM:          "EM_ARM",
	EM_ALPHA_STD:    "EM_ALPHA_STD",
	EM_SH:           "EM_SH",
	EM_SPARCV9:      "EM_SPARCV9",
	EM_TRICORE:      "EM_TRICORE",
	EM_ARC:          "EM_ARC",
	EM_H8_300:       "EM_H8_300",
	EM_H8_300H:      "EM_H8_300H",
	EM_H8S:          "EM_H8S",
	EM_H8_500:       "EM_H8_500",
	EM_IA_64:        "EM_IA_64",
	EM_MIPS_X:       "EM_MIPS_X",
	EM_COLDFIRE:     "EM_COLDFIRE",
	EM_68HC12:       "EM_68HC12",
	EM_MMA:          "EM_MMA",
	EM_PCP:          "EM_PCP",
	EM_NCPU:         "EM_NCPU",
	EM_NDR1:         "EM_NDR1",
	EM_STARCORE:     "EM_STARCORE",
	EM_ME16:         "EM_ME16",
	EM_ST100:        "EM_ST100",
	EM_TINYJ:        "EM_TINYJ",
	EM_X86_64:       "EM_X86_64",
	EM_PDSP:         "EM_PDSP",
	EM_FX66:         "EM_FX66",
	EM_ST9PLUS:      "EM_ST9PLUS",
	EM_ST7:          "EM_ST7",
	EM_68HC16:       "EM_68HC16",
	EM_68HC11:       "EM_68HC11",
	EM_68HC08:       "EM_68HC08",
	EM_68HC05:       "EM_68HC05",
	EM_SVX:          "EM_SVX",
	EM_ST19:         "EM_ST19",
	EM_VAX:          "EM_VAX",
	EM_CRIS:         "EM_CRIS",
	EM_JAVELIN:      "EM_JAVELIN",
	EM_FIREPATH:     "EM_FIREPATH",
	EM_ZSP:          "EM_ZSP",
	EM_MMIX:         "EM_MMIX",
	EM_HUANY:        "EM_HUANY",
	EM_PRISM:        "EM_PRISM",
	EM_AVR:          "EM_AVR",
	EM_FR30:         "EM_FR30",
	EM_D10V:         "EM_D10V",
	EM_D30V:         "EM_D30V",
	EM_V850:         "EM_V850",
	EM_M32R:         "EM_M32R",
	EM_MN10300:      "EM_MN10300",
	EM_MN10200:      "EM_MN10200",
	EM_PJ:           "EM_PJ",
	EM_OPENRISC:     "EM_OPENRISC",
	EM_ARC_COMPACT:  "EM_ARC_COMPACT",
	EM_XTENSA:       "EM_XTENSA",
	EM_ALTERA_NIOS2: "EM_ALTERA_NIOS2",
	EM_AARCH64:      "EM_AARCH64",
	EM_TILEPRO:      "EM_TILEPRO",
	EM_MICROBLAZE:   "EM_MICROBLAZE",
	EM_TILEGX:       "EM_TILEGX",
	EM_RISCV:        "EM_RISCV",
	EM_BPF:          "EM_BPF",
	EM_LOONGARCH:    "EM_LOONGARCH",
}

func (m Machine) String() string { return name(machineNames, m) }

// DecodeMachine decodes the machine field.
func DecodeMachine(v uint16) Maybe[Machine] { return lookup(machineNames, Machine(v)) }
