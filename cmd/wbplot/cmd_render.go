package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vdobler/wbplot/internal/chartfile"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render [chart.yaml]",
	Short: "Render a chart file",
	Long: `Render a chart file to an image.

The output file is taken from --output, then from the chart's output
key, and defaults to the chart name with the configured format.

Examples:
  wbplot render growth.yaml
  wbplot render growth.yaml -o growth.svg
  wbplot render growth.yaml --format pdf --output-dir out`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRender(args[0], renderOutput, config.Render)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file")
	renderCmd.Flags().String("format", "png", "output format when no file name is given")
	renderCmd.Flags().Float64("dpi", 0, "resolution, overrides the chart")
	renderCmd.Flags().String("output-dir", "", "directory for derived output names")

	_ = viper.BindPFlag("render.format", renderCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("render.dpi", renderCmd.Flags().Lookup("dpi"))
	_ = viper.BindPFlag("render.output_dir", renderCmd.Flags().Lookup("output-dir"))

	rootCmd.AddCommand(renderCmd)
}

func runRender(path, output string, cfg RenderConfig) error {
	c, err := chartfile.Load(path)
	if err != nil {
		return err
	}
	if cfg.DPI > 0 {
		c.DPI = cfg.DPI
	}
	f, err := c.Build(logger)
	if err != nil {
		return err
	}
	out := outputPath(path, c.Output, output, cfg)
	if err := f.Save(out); err != nil {
		return err
	}
	logger.Info("rendered chart", zap.String("chart", path), zap.String("output", out))
	return nil
}

// outputPath picks the output file: the flag, the chart's own output,
// or the chart name with the configured format.
func outputPath(chartPath, chartOutput, flagOutput string, cfg RenderConfig) string {
	switch {
	case flagOutput != "":
		return flagOutput
	case chartOutput != "":
		if cfg.OutputDir != "" && !filepath.IsAbs(chartOutput) {
			return filepath.Join(cfg.OutputDir, chartOutput)
		}
		return chartOutput
	}
	format := strings.TrimPrefix(cfg.Format, ".")
	if format == "" {
		format = "png"
	}
	base := strings.TrimSuffix(filepath.Base(chartPath), filepath.Ext(chartPath))
	dir := cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(chartPath)
	}
	return filepath.Join(dir, fmt.Sprintf("%s.%s", base, format))
}
