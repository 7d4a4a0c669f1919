package chartfile

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gonum.org/v1/plot/text"

	"github.com/vdobler/wbplot"
)

// ReadSheet loads a spreadsheet into a data frame. The first row of the
// sheet names the columns. An empty sheet name selects the first sheet.
func ReadSheet(path, sheet string) (*wbplot.DataFrame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%s has no sheets: %w", path, wbplot.ErrNoData)
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s/%s: %w", path, sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s/%s is empty: %w", path, sheet, wbplot.ErrNoData)
	}
	return wbplot.NewDataFrameFromRows(sheet, rows[0], rows[1:])
}

// Build loads all sources, draws every series and finishes the figure.
// The figure is not saved.
func (c *Chart) Build(log *zap.Logger) (*wbplot.Figure, error) {
	if log == nil {
		log = zap.NewNop()
	}
	frames := make(map[string]*wbplot.DataFrame, len(c.Sources))
	for name, src := range c.Sources {
		path := src.File
		if !filepath.IsAbs(path) && c.dir != "" {
			path = filepath.Join(c.dir, path)
		}
		df, err := ReadSheet(path, src.Sheet)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", name, err)
		}
		log.Debug("loaded source",
			zap.String("source", name),
			zap.Int("rows", df.N),
			zap.Strings("fields", df.FieldNames()))
		frames[name] = df
	}

	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	opts.Logger = log
	return wbplot.Plot(opts, func(panels []*wbplot.Panel) error {
		for i, pd := range c.Panels {
			if err := pd.draw(panels[i], frames); err != nil {
				return fmt.Errorf("panel %d: %w", i, err)
			}
		}
		return nil
	})
}

func (pd Panel) draw(p *wbplot.Panel, frames map[string]*wbplot.DataFrame) error {
	p.X.Label, p.Y.Label = pd.XLabel, pd.YLabel
	var err error
	if p.X.Scale, err = parseScale(pd.XScale); err != nil {
		return err
	}
	if p.Y.Scale, err = parseScale(pd.YScale); err != nil {
		return err
	}
	for j, s := range pd.Series {
		if err := s.draw(p, frames[s.Source]); err != nil {
			return fmt.Errorf("series %d (%s): %w", j, s.Kind, err)
		}
	}
	if pd.XMin != nil {
		p.X.SetMin(*pd.XMin)
	}
	if pd.XMax != nil {
		p.X.SetMax(*pd.XMax)
	}
	if pd.YMin != nil {
		p.Y.SetMin(*pd.YMin)
	}
	if pd.YMax != nil {
		p.Y.SetMax(*pd.YMax)
	}
	return nil
}

func (s Series) style() wbplot.AesMapping {
	style := wbplot.AesMapping{}
	for k, v := range s.Style {
		style[k] = v
	}
	if s.Label != "" {
		style["label"] = s.Label
	}
	return style
}

// draw issues the plotting call of s, reading columns from df if set.
func (s Series) draw(p *wbplot.Panel, df *wbplot.DataFrame) error {
	style := s.style()
	if df != nil {
		return s.drawFrame(p, df, style)
	}

	var err error
	switch s.Kind {
	case "line":
		_, err = p.Plot(s.X, s.Y, style)
	case "time":
		ts := make([]time.Time, len(s.Times))
		for i, v := range s.Times {
			if ts[i], err = wbplot.ParseTime(v); err != nil {
				return err
			}
		}
		_, err = p.PlotTime(ts, s.Y, style)
	case "scatter":
		_, err = p.Scatter(s.X, s.Y, style)
	case "bar", "barh":
		err = s.drawBars(p, style)
	case "image":
		p.ImShow(s.Z)
	case "text":
		if len(s.At) != 2 {
			return fmt.Errorf("text needs at: [x, y]: %w", ErrInvalid)
		}
		p.Text(s.At[0], s.At[1], s.Text, style)
	case "hline", "vline":
		if len(s.At) == 0 {
			return fmt.Errorf("%s needs at: %w", s.Kind, ErrInvalid)
		}
		for _, v := range s.At {
			if s.Kind == "hline" {
				p.HLine(v, style)
			} else {
				p.VLine(v, style)
			}
		}
	default:
		return fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}
	return err
}

func (s Series) drawBars(p *wbplot.Panel, style wbplot.AesMapping) error {
	var err error
	switch {
	case len(s.Categories) > 0 && s.Kind == "bar":
		_, err = p.Bar(s.Categories, s.Y, style)
	case len(s.Categories) > 0:
		_, err = p.BarH(s.Categories, s.Y, style)
	case s.Kind == "bar":
		_, err = p.BarAt(s.X, s.Y, style)
	default:
		_, err = p.BarHAt(s.X, s.Y, style)
	}
	return err
}

func (s Series) drawFrame(p *wbplot.Panel, df *wbplot.DataFrame, style wbplot.AesMapping) error {
	df, err := where(df, s.Where)
	if err != nil {
		return err
	}
	if s.GroupBy == "" {
		return s.drawColumns(p, df, style)
	}
	levels, err := wbplot.Levels(df, s.GroupBy)
	if err != nil {
		return err
	}
	for _, level := range levels {
		sub, err := filter(df, s.GroupBy, level)
		if err != nil {
			return err
		}
		st := style.Copy()
		st["label"] = level
		if err := s.drawColumns(p, sub, st); err != nil {
			return fmt.Errorf("group %s: %w", level, err)
		}
	}
	return nil
}

func (s Series) drawColumns(p *wbplot.Panel, df *wbplot.DataFrame, style wbplot.AesMapping) error {
	var err error
	switch s.Kind {
	case "line", "time":
		_, err = p.PlotFrame(df, s.XCol, s.YCol, style)
	case "scatter":
		_, err = p.ScatterFrame(df, s.XCol, s.YCol, style)
	case "bar":
		_, err = p.BarFrame(df, s.XCol, s.YCol, false, style)
	case "barh":
		_, err = p.BarFrame(df, s.XCol, s.YCol, true, style)
	case "image":
		var z [][]float64
		z, err = matrix(df)
		if err == nil {
			p.ImShow(z)
		}
	default:
		return fmt.Errorf("%s cannot read a source: %w", s.Kind, ErrInvalid)
	}
	if err != nil || s.Mark == "" {
		return err
	}
	return s.markExtremes(p, df)
}

// markExtremes labels the smallest and or largest value of the y column
// just above its point.
func (s Series) markExtremes(p *wbplot.Panel, df *wbplot.DataFrame) error {
	min, max, imin, imax, err := wbplot.MinMax(df, s.YCol)
	if err != nil {
		return err
	}
	xf, err := df.Field(s.XCol)
	if err != nil {
		return err
	}
	xs, err := xf.Floats()
	if err != nil {
		return err
	}
	mark := func(i int, v float64) {
		if i < 0 {
			return
		}
		t := p.Text(xs[i], v, wbplot.FormatNumber(v, wbplot.NumberFormat{}), wbplot.AesMapping{"size": "9"})
		t.YAlign = text.YBottom
	}
	if s.Mark != "max" {
		mark(imin, min)
	}
	if s.Mark != "min" && imax != imin {
		mark(imax, max)
	}
	return nil
}

// where applies the row filters of a series in column order.
func where(df *wbplot.DataFrame, conds map[string]string) (*wbplot.DataFrame, error) {
	cols := make([]string, 0, len(conds))
	for col := range conds {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	for _, col := range cols {
		var err error
		if df, err = filter(df, col, conds[col]); err != nil {
			return nil, fmt.Errorf("where %s: %w", col, err)
		}
	}
	return df, nil
}

// filter keeps the rows where col equals the cell text value.
func filter(df *wbplot.DataFrame, col, value string) (*wbplot.DataFrame, error) {
	f, err := df.Field(col)
	if err != nil {
		return nil, err
	}
	switch f.Type {
	case wbplot.String:
		return wbplot.Filter(df, col, value)
	case wbplot.Time:
		t, err := wbplot.ParseTime(value)
		if err != nil {
			return nil, err
		}
		return wbplot.Filter(df, col, t)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number: %w", value, wbplot.ErrFieldType)
	}
	return wbplot.Filter(df, col, v)
}

// matrix returns the numeric columns of df as rows of an image.
func matrix(df *wbplot.DataFrame) ([][]float64, error) {
	var cols [][]float64
	for _, name := range df.FieldNames() {
		f, _ := df.Field(name)
		if vs, err := f.Floats(); err == nil {
			cols = append(cols, vs)
		}
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("%s has no numeric columns: %w", df.Name, wbplot.ErrNoData)
	}
	z := make([][]float64, df.N)
	for r := range z {
		z[r] = make([]float64, len(cols))
		for c := range cols {
			z[r][c] = cols[c][r]
		}
	}
	return z, nil
}
