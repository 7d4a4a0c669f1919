package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdobler/wbplot"
)

var showSwatches bool

var palettesCmd = &cobra.Command{
	Use:   "palettes [name...]",
	Short: "List the registered palettes",
	Long: `List the registered palettes, or the swatches of the named ones.

Examples:
  wbplot palettes
  wbplot palettes --swatches
  wbplot palettes wb_region wb_income`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPalettes(cmd.OutOrStdout(), args, showSwatches)
	},
}

func init() {
	palettesCmd.Flags().BoolVar(&showSwatches, "swatches", false, "print the colours of every palette")
	rootCmd.AddCommand(palettesCmd)
}

func runPalettes(w io.Writer, names []string, swatches bool) error {
	if len(names) == 0 {
		names = wbplot.PaletteNames()
	} else {
		swatches = true
	}
	for _, name := range names {
		if !swatches {
			fmt.Fprintln(w, name)
			continue
		}
		sw, err := wbplot.PaletteSwatches(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s:\n", name)
		for _, s := range sw {
			fmt.Fprintf(w, "  %-16s %s\n", s.Key, s.Hex)
		}
	}
	return nil
}
