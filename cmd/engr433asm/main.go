// main.go - engr433asm command line front end

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ethanjansen/riscv-cpu/assembler"
)

const defaultOutput = "program.data"

type options struct {
	listing bool
	symbols bool
	color   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "engr433asm [flags] infile [outfile]",
		Short: "Assemble an ENGR 433 source file into program memory init data",
		Long: `engr433asm converts an ENGR 433 assembly source file into a program
memory initialisation file: 2048 lines of 18 binary digits, one per word.

The output file defaults to ` + defaultOutput + `. Nothing is written when the
source contains errors.`,
		Example: `  engr433asm blink.asm
  engr433asm -l blink.asm blink.data
  engr433asm --symbols --color=never blink.asm`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			outPath := defaultOutput
			if len(args) == 2 {
				outPath = args[1]
			}
			return run(opts, args[0], outPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolVarP(&opts.listing, "listing", "l", false, "print an assembly listing")
	cmd.Flags().BoolVarP(&opts.symbols, "symbols", "s", false, "print the label table")
	cmd.Flags().StringVar(&opts.color, "color", "auto", "colour diagnostics: auto, always or never")
	return cmd
}

func run(opts *options, inPath, outPath string, stdout, stderr io.Writer) error {
	color, err := useColor(opts.color, stderr)
	if err != nil {
		return err
	}
	rep := &reporter{w: stderr, path: inPath, color: color}

	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}
	glog.V(1).Infof("read %s (%d bytes)", inPath, len(source))

	asm := assembler.NewAssembler()
	asm.SetListingMode(opts.listing)
	words, asmErr := asm.Assemble(string(source))

	for _, w := range asm.GetWarnings() {
		rep.warning(w)
	}
	if opts.listing {
		for _, line := range asm.GetListing() {
			fmt.Fprintln(stdout, line)
		}
	}
	if opts.symbols {
		if err := dumpSymbols(stdout, asm.Labels(), color); err != nil {
			return err
		}
	}

	if asmErr != nil {
		var diagErr *assembler.Error
		if errors.As(asmErr, &diagErr) {
			for _, d := range diagErr.Diagnostics {
				rep.diagnostic(d)
			}
			return fmt.Errorf("%d error(s), %s not written", len(diagErr.Diagnostics), outPath)
		}
		return asmErr
	}

	if err := writeImageFile(outPath, words); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Successfully assembled to %s (%d of %d words)\n", outPath, len(words), assembler.MemoryWords)
	return nil
}

func writeImageFile(path string, words []uint32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := assembler.WriteImage(f, words); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	glog.V(1).Infof("wrote %s", path)
	return nil
}

func main() {
	_ = flag.Set("logtostderr", "true")

	cmd := newRootCmd()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	err := cmd.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
