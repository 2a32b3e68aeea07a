package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/apbrom/emit"
	"github.com/ezrec/apbrom/rom"
	"github.com/ezrec/apbrom/script"
)

// compileConfig collects the compile command's settings.
type compileConfig struct {
	Output   string
	Format   emit.Format
	Options  emit.Options
	MaxDepth int
	Defines  []string
	Strict   bool
}

var compileCmd = &cobra.Command{
	Use:   "compile [flags] script",
	Short: "compile a program script into a ROM image.",
	Long: `Run a program script and write the single compilation it emits as a
memory initialization file, a listing, or a symbol map.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		var cfg compileConfig

		cfg.Output = getString(cmd, "output")
		cfg.MaxDepth = getInt(cmd, "max-depth")
		cfg.Defines = getStringArray(cmd, "define")
		cfg.Strict = getFlag(cmd, "strict")
		cfg.Options.Depth = getInt(cmd, "depth")

		cfg.Format, err = emit.ParseFormat(getString(cmd, "format"))
		if err != nil {
			return
		}

		cfg.Options.Radix, err = emit.ParseRadix(getString(cmd, "radix"))
		if err != nil {
			return
		}

		fill, err := strconv.ParseUint(getString(cmd, "fill"), 0, 64)
		if err != nil {
			return fmt.Errorf("fill: %w", err)
		}
		cfg.Options.Fill = rom.Word(fill)

		if cfg.Output == "-" && cfg.Format == emit.FORMAT_LISTING && term.IsTerminal(int(os.Stdout.Fd())) {
			width, _, err := term.GetSize(int(os.Stdout.Fd()))
			if err == nil {
				cfg.Options.Width = width
			}
		}

		err = compileScript(&cfg, args[0], cmd.OutOrStdout())
		return
	},
}

// parseDefine splits a name=value definition.
func parseDefine(item string) (name string, value int64, err error) {
	name, text, ok := strings.Cut(item, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%w: %q", ErrDefineMalformed, item)
		return
	}

	value, err = strconv.ParseInt(text, 0, 64)
	if err != nil {
		err = fmt.Errorf("%w: %q: %w", ErrDefineMalformed, item, err)
	}
	return
}

// compileScript runs filename and writes its image. Output is rendered
// in full before anything is written.
func compileScript(cfg *compileConfig, filename string, stdout io.Writer) (err error) {
	s := &script.Script{}
	s.Assembler.MaxDepth = cfg.MaxDepth

	for _, item := range cfg.Defines {
		name, value, err := parseDefine(item)
		if err != nil {
			return err
		}
		err = s.Predefine(name, value)
		if err != nil {
			return err
		}
	}

	comp, err := s.Compile(filename, nil)
	if err != nil {
		return
	}

	if cfg.Strict && len(comp.Warnings) != 0 {
		err = errors.Join(comp.Warnings...)
		return
	}

	log.WithFields(log.Fields{
		"depth":  comp.Image.Depth(),
		"labels": len(comp.Symbols),
	}).Debug("compiled")

	var buf bytes.Buffer
	err = emit.Write(&buf, cfg.Format, comp, cfg.Options)
	if err != nil {
		return
	}

	if cfg.Output == "-" {
		_, err = stdout.Write(buf.Bytes())
		return
	}

	err = os.WriteFile(cfg.Output, buf.Bytes(), 0o644)
	return
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringP("output", "o", "-", "output file, '-' for stdout")
	compileCmd.Flags().StringP("format", "f", "mif", "output format: mif, listing or symbols")
	compileCmd.Flags().String("radix", "hex", "MIF radix: hex, bin or uns")
	compileCmd.Flags().Int("depth", 0, "fixed image depth, 0 for the program length")
	compileCmd.Flags().String("fill", "0", "word filling addresses past the program")
	compileCmd.Flags().Int("max-depth", rom.MAX_DEPTH, "maximum program length")
	compileCmd.Flags().StringArrayP("define", "D", []string{}, "predeclare an integer, as name=value")
	compileCmd.Flags().Bool("strict", false, "treat warnings as errors")
}
