// Package wbplot draws charts in a fixed house style on top of gonum/plot.
//
// A Figure is a grid of panels plus a title, a subtitle and notes. Data
// is drawn into panels with Plot, PlotTime, Scatter, Bar, BarH, ImShow,
// HLine, VLine and Text. Finish then looks at what was drawn and styles
// each panel for its chart category:
//
//     single_numeric  only images or nothing plottable
//     scatter         points without lines
//     line            lines over numbers
//     timeseries      lines over time
//     bar             rectangles, vertical or horizontal
//
// Styling sets typography and grid lines, adds zero reference lines,
// floors line charts at zero, labels bars with their values and tidies
// the tick marks. It can be applied repeatedly without stacking
// artifacts.
//
//
// Data Frames
//
// Besides plain slices, panels can draw columns of a DataFrame. Data
// frames are built from a slice of structs or from textual rows:
//
//      type Measurement struct {
//          Year  int
//          Share float64
//      }
//      df, _ := wbplot.NewDataFrameFrom(measurements)
//      panel.PlotFrame(df, "Year", "Share", nil)
//
// Methods without parameters on the struct type become computed
// columns:
//    func(m Measurement) Percent() float64 { return 100 * m.Share }
//
//
// Palettes
//
// Figures may name one of the registered palettes. Cycle palettes
// colour successive series, label map palettes colour series and texts
// by their label, and sequential or diverging palettes provide the
// colormap of images, optionally binned by value.
//
package wbplot
