package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vdobler/wbplot"
)

var numberFormat wbplot.NumberFormat

var formatCmd = &cobra.Command{
	Use:   "format [number...]",
	Short: "Format numbers the way chart labels show them",
	Long: `Format numbers the way chart labels show them.

Examples:
  wbplot format 2015 25000 1234.5
  wbplot format 3e9 --unit watt
  wbplot format 12.34 --percent`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormat(cmd.OutOrStdout(), args, numberFormat)
	},
}

func init() {
	formatCmd.Flags().StringVar(&numberFormat.Unit, "unit", "", "unit suffix (watt, tons, bits and bytes are abbreviated)")
	formatCmd.Flags().BoolVar(&numberFormat.Percent, "percent", false, "append a percent sign")
	formatCmd.Flags().BoolVar(&numberFormat.Currency, "currency", false, "prefix a dollar sign")
	rootCmd.AddCommand(formatCmd)
}

func runFormat(w io.Writer, args []string, nf wbplot.NumberFormat) error {
	for _, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", a)
		}
		fmt.Fprintln(w, wbplot.FormatNumber(v, nf))
	}
	return nil
}
