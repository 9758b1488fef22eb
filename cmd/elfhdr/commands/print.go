package commands

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/please-build/elf"
)

const (
	formatTable = "table"
	formatLine  = "line"
)

type printer func(w io.Writer, path string, h elf.Header) error

var printers = map[string]printer{
	formatTable: printTable,
	formatLine:  printLine,
}

func endianness(d elf.Data) string {
	if d == elf.ELFDATA2MSB {
		return "big-endian"
	}
	return "little-endian"
}

// printLine prints the two-line summary: "<type> <machine> <bits>-bit <endianness> <abi>:<abi
// version>" followed by "version: <file version>".
func printLine(w io.Writer, _ string, h elf.Header) error {
	_, err := fmt.Fprintf(w, "%s %s %d-bit %s %s:%d\nversion: %d\n",
		h.Type, h.Machine, h.Class.Bits(), endianness(h.Data), h.OSABI, h.ABIVersion, h.Version)
	return err
}

func printTable(w io.Writer, path string, h elf.Header) error {
	pairs := [][2]string{
		{"File", path},
		{"Class", h.Class.String()},
		{"Data", fmt.Sprintf("%s (%s)", h.Data, endianness(h.Data))},
		{"OS/ABI", h.OSABI.String()},
		{"ABI version", fmt.Sprint(h.ABIVersion)},
		{"Type", h.Type.String()},
		{"Machine", h.Machine.String()},
		{"Version", fmt.Sprint(h.Version)},
		{"Entry point", fmt.Sprintf("0x%x", h.Entry)},
		{"Program headers", fmt.Sprintf("%d x %d bytes at offset %d", h.PhNum, h.PhEntSize, h.PhOff)},
		{"Section headers", fmt.Sprintf("%d x %d bytes at offset %d", h.ShNum, h.ShEntSize, h.ShOff)},
		{"Flags", fmt.Sprintf("0x%x", h.Flags)},
		{"Header size", fmt.Sprint(h.EhSize)},
		{"Section names", fmt.Sprint(h.ShStrNdx)},
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(":")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, pair := range pairs {
		table.Append([]string{pair[0], pair[1]})
	}
	table.Render()
	return nil
}
