// Package commands implements the elfhdr command line.
package commands

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/please-build/elf"
)

const envPrefix = "ELFHDR"

// NewRootCmd returns the elfhdr command. Flags may also be set through ELFHDR_* environment
// variables; flags given on the command line win.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "elfhdr <file>...",
		Short: "Print the file header of ELF objects",
		Long: `elfhdr validates the file header of each ELF object given and prints its
fields: class, byte order, OS/ABI, type, machine, entry point and the locations
of the program and section header tables.

Codes that elfhdr has no name for are printed as unknown(<code>).`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), v, args)
		},
	}
	cmd.Flags().StringP("output", "o", formatTable, "Output format (table|line)")
	cmd.Flags().BoolP("verbose", "v", false, "Log each file as it is read")
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		panic(err)
	}
	return cmd
}

// Execute runs the elfhdr command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func run(stdout, stderr io.Writer, v *viper.Viper, paths []string) error {
	logger := log.New()
	logger.SetOutput(stderr)
	if v.GetBool("verbose") {
		logger.SetLevel(log.DebugLevel)
	}

	format := v.GetString("output")
	printer, ok := printers[format]
	if !ok {
		return errors.Errorf("unknown output format %q", format)
	}

	failed := 0
	for _, path := range paths {
		hdr, err := readHeader(path)
		if err != nil {
			logger.WithField("path", path).WithError(err).Error("failed to read ELF header")
			failed++
			continue
		}
		logger.WithFields(log.Fields{
			"path":    path,
			"class":   hdr.Class,
			"machine": hdr.Machine,
		}).Debug("read ELF header")
		if err := printer(stdout, path, hdr); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d files could not be read", failed, len(paths))
	}
	return nil
}

func readHeader(path string) (elf.Header, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return elf.Header{}, errors.Wrapf(err, "read %s", path)
	}
	obj, err := elf.NewObject(data)
	if err != nil {
		return elf.Header{}, errors.WithMessage(err, path)
	}
	return obj.Header(), nil
}
