package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vdobler/wbplot"
	"github.com/vdobler/wbplot/internal/chartfile"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [chart.yaml]",
	Short: "Print the chart category of each panel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(w io.Writer, path string) error {
	c, err := chartfile.Load(path)
	if err != nil {
		return err
	}
	f, err := c.Build(logger)
	if err != nil {
		return err
	}
	for i, p := range f.Panels {
		d := wbplot.Inspect(p)
		cat := wbplot.Classify(d)
		line := fmt.Sprintf("panel %d,%d: %s", i/f.Cols, i%f.Cols, cat)
		if cat == wbplot.Bar {
			line += " " + wbplot.DetectOrientation(d.RectGroups, f.Theme.BarAspectRatio).String()
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
