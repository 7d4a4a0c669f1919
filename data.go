package wbplot

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrUnknownField is returned for columns not in a data frame.
	ErrUnknownField = errors.New("wbplot: unknown field")
	// ErrFieldType is returned when a column has the wrong type for
	// an operation.
	ErrFieldType = errors.New("wbplot: wrong field type")
)

// FieldType represents the basic type of a field.
type FieldType uint

const (
	Int FieldType = iota
	Float
	String
	Time
)

func (t FieldType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Time:
		return "time"
	}
	return fmt.Sprintf("FieldType(%d)", uint(t))
}

// Field is a typed column. Numeric and time columns keep their values
// in Data, time columns as Unix seconds; missing values are NaN.
type Field struct {
	Name  string
	Type  FieldType
	Data  []float64
	Str   []string
	Times []time.Time
}

// Len is the number of values.
func (f Field) Len() int {
	if f.Type == String {
		return len(f.Str)
	}
	return len(f.Data)
}

// Floats returns the numeric values of f.
func (f Field) Floats() ([]float64, error) {
	if f.Type == String {
		return nil, fmt.Errorf("field %s is %s: %w", f.Name, f.Type, ErrFieldType)
	}
	return append([]float64(nil), f.Data...), nil
}

// Strings returns the values of f formatted as text.
func (f Field) Strings() []string {
	switch f.Type {
	case String:
		return append([]string(nil), f.Str...)
	case Time:
		s := make([]string, len(f.Times))
		for i, t := range f.Times {
			s[i] = t.Format(time.RFC3339)
		}
		return s
	}
	s := make([]string, len(f.Data))
	for i, v := range f.Data {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return s
}

func (f Field) subset(idx []int) Field {
	g := Field{Name: f.Name, Type: f.Type}
	for _, i := range idx {
		switch f.Type {
		case String:
			g.Str = append(g.Str, f.Str[i])
		case Time:
			g.Times = append(g.Times, f.Times[i])
			g.Data = append(g.Data, f.Data[i])
		default:
			g.Data = append(g.Data, f.Data[i])
		}
	}
	return g
}

// DataFrame is a set of equally long named columns.
type DataFrame struct {
	Name    string
	N       int
	Columns map[string]Field
	order   []string
}

func newDataFrame(name string) *DataFrame {
	return &DataFrame{Name: name, Columns: make(map[string]Field)}
}

func (df *DataFrame) add(f Field) {
	if _, ok := df.Columns[f.Name]; !ok {
		df.order = append(df.order, f.Name)
	}
	df.Columns[f.Name] = f
}

// FieldNames returns the column names in insertion order.
func (df *DataFrame) FieldNames() []string {
	return append([]string(nil), df.order...)
}

// Has reports whether df has a column name.
func (df *DataFrame) Has(name string) bool {
	_, ok := df.Columns[name]
	return ok
}

// Field returns the column name.
func (df *DataFrame) Field(name string) (Field, error) {
	f, ok := df.Columns[name]
	if !ok {
		return Field{}, fmt.Errorf("%q in %s: %w", name, df.Name, ErrUnknownField)
	}
	return f, nil
}

// -------------------------------------------------------------------------
// Construction

var timeType = reflect.TypeOf(time.Time{})

// NewDataFrameFrom constructs a data frame from a slice of structs. All
// int, float, string and time.Time fields become columns, as do methods
// without arguments returning one of these types.
func NewDataFrameFrom(data interface{}) (*DataFrame, error) {
	v := reflect.ValueOf(data)
	if v.Kind() != reflect.Slice || v.Type().Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("wbplot: cannot convert %T to data frame", data)
	}
	t := v.Type().Elem()
	n := v.Len()
	df := newDataFrame(t.Name())
	df.N = n

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" { // unexported
			continue
		}
		ft, ok := fieldType(sf.Type)
		if !ok {
			continue
		}
		df.add(column(sf.Name, ft, n, func(j int) reflect.Value {
			return v.Index(j).Field(i)
		}))
	}

	// Methods with signatures like "func(elemtype) [int,string,float,time]".
	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		mt := m.Type
		if mt.NumIn() != 1 || mt.NumOut() != 1 {
			continue
		}
		ft, ok := fieldType(mt.Out(0))
		if !ok {
			continue
		}
		df.add(column(m.Name, ft, n, func(j int) reflect.Value {
			return m.Func.Call([]reflect.Value{v.Index(j)})[0]
		}))
	}
	return df, nil
}

func fieldType(t reflect.Type) (FieldType, bool) {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int, true
	case reflect.Float32, reflect.Float64:
		return Float, true
	case reflect.String:
		return String, true
	case reflect.Struct:
		if t == timeType {
			return Time, true
		}
	}
	return 0, false
}

func column(name string, ft FieldType, n int, value func(int) reflect.Value) Field {
	f := Field{Name: name, Type: ft}
	for j := 0; j < n; j++ {
		rv := value(j)
		switch ft {
		case Int:
			if rv.CanInt() {
				f.Data = append(f.Data, float64(rv.Int()))
			} else {
				f.Data = append(f.Data, float64(rv.Uint()))
			}
		case Float:
			f.Data = append(f.Data, rv.Float())
		case String:
			f.Str = append(f.Str, rv.String())
		case Time:
			tm := rv.Interface().(time.Time)
			f.Times = append(f.Times, tm)
			f.Data = append(f.Data, unixSeconds(tm))
		}
	}
	return f
}

func unixSeconds(t time.Time) float64 {
	if t.IsZero() {
		return math.NaN()
	}
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// timeLayouts are tried in order when inferring time columns.
var timeLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01",
	"01/02/2006",
	"01-02-06",
}

// NewDataFrameFromRows builds a data frame from textual rows, e.g. a CSV
// file or a spreadsheet. Each column gets the narrowest of Int, Float,
// Time and String that parses all its non-empty cells. Short rows are
// padded with empty cells.
func NewDataFrameFromRows(name string, header []string, rows [][]string) (*DataFrame, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("data frame %s: no columns: %w", name, ErrNoData)
	}
	df := newDataFrame(name)
	df.N = len(rows)
	for c, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("col%d", c+1)
		}
		cells := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				cells[r] = strings.TrimSpace(row[c])
			}
		}
		df.add(inferColumn(h, cells))
	}
	return df, nil
}

func inferColumn(name string, cells []string) Field {
	isInt, isFloat, isTime := true, true, true
	layout := ""
	for _, s := range cells {
		if s == "" {
			continue
		}
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			isInt = false
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			isFloat = false
		}
		if isTime {
			if layout == "" {
				layout = detectLayout(s)
				isTime = layout != ""
			} else if _, err := time.Parse(layout, s); err != nil {
				isTime = false
			}
		}
	}
	f := Field{Name: name}
	switch {
	case isInt || isFloat:
		f.Type = Float
		if isInt {
			f.Type = Int
		}
		for _, s := range cells {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				v = math.NaN()
			}
			f.Data = append(f.Data, v)
		}
	case isTime && layout != "":
		f.Type = Time
		for _, s := range cells {
			tm, _ := time.Parse(layout, s)
			f.Times = append(f.Times, tm)
			f.Data = append(f.Data, unixSeconds(tm))
		}
	default:
		f.Type = String
		f.Str = cells
	}
	return f
}

// ParseTime parses s in the first of the known layouts that fits.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	l := detectLayout(s)
	if l == "" {
		return time.Time{}, fmt.Errorf("wbplot: unknown time format %q", s)
	}
	return time.Parse(l, s)
}

func detectLayout(s string) string {
	for _, l := range timeLayouts {
		if _, err := time.Parse(l, s); err == nil {
			return l
		}
	}
	return ""
}

// -------------------------------------------------------------------------
// Queries

// Filter extracts all rows from df where field equals value. Value may
// be a number, a string or a time.
func Filter(df *DataFrame, field string, value interface{}) (*DataFrame, error) {
	f, err := df.Field(field)
	if err != nil {
		return nil, err
	}
	var match func(i int) bool
	switch x := value.(type) {
	case string:
		if f.Type != String {
			return nil, fmt.Errorf("filtering %s by string: %w", field, ErrFieldType)
		}
		match = func(i int) bool { return f.Str[i] == x }
	case time.Time:
		if f.Type != Time {
			return nil, fmt.Errorf("filtering %s by time: %w", field, ErrFieldType)
		}
		match = func(i int) bool { return f.Times[i].Equal(x) }
	default:
		rv := reflect.ValueOf(value)
		var num float64
		switch {
		case rv.CanInt():
			num = float64(rv.Int())
		case rv.CanUint():
			num = float64(rv.Uint())
		case rv.CanFloat():
			num = rv.Float()
		default:
			return nil, fmt.Errorf("filtering %s by %T: %w", field, value, ErrFieldType)
		}
		if f.Type == String {
			return nil, fmt.Errorf("filtering %s by number: %w", field, ErrFieldType)
		}
		match = func(i int) bool { return f.Data[i] == num }
	}

	var idx []int
	for i := 0; i < df.N; i++ {
		if match(i) {
			idx = append(idx, i)
		}
	}
	result := newDataFrame(df.Name)
	result.N = len(idx)
	for _, name := range df.order {
		result.add(df.Columns[name].subset(idx))
	}
	return result, nil
}

// Levels returns the distinct values of field in order of first
// appearance.
func Levels(df *DataFrame, field string) ([]string, error) {
	f, err := df.Field(field)
	if err != nil {
		return nil, err
	}
	pool := NewStringPool()
	for _, s := range f.Strings() {
		pool.Add(s)
	}
	return pool.Elements(), nil
}

// MinMax determines minimum and maximum of a numeric field and the
// indices where they occur. NaN values are skipped; without values the
// indices are -1.
func MinMax(df *DataFrame, field string) (min, max float64, imin, imax int, err error) {
	f, err := df.Field(field)
	if err != nil {
		return 0, 0, -1, -1, err
	}
	if f.Type == String {
		return 0, 0, -1, -1, fmt.Errorf("min/max of %s: %w", field, ErrFieldType)
	}
	min, max = math.Inf(+1), math.Inf(-1)
	imin, imax = -1, -1
	for i, v := range f.Data {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min, imin = v, i
		}
		if v > max {
			max, imax = v, i
		}
	}
	return min, max, imin, imax, nil
}

// -------------------------------------------------------------------------
// Plotting columns

func (df *DataFrame) numeric(name string) ([]float64, error) {
	f, err := df.Field(name)
	if err != nil {
		return nil, err
	}
	return f.Floats()
}

// PlotFrame draws y over x. A time column x makes a time series.
func (p *Panel) PlotFrame(df *DataFrame, x, y string, style AesMapping) (*Line, error) {
	ys, err := df.numeric(y)
	if err != nil {
		return nil, err
	}
	xf, err := df.Field(x)
	if err != nil {
		return nil, err
	}
	style = MergeStyles(style, AesMapping{"label": y})
	if xf.Type == Time {
		return p.PlotTime(xf.Times, ys, style)
	}
	xs, err := xf.Floats()
	if err != nil {
		return nil, err
	}
	return p.Plot(xs, ys, style)
}

// ScatterFrame draws the points (x, y).
func (p *Panel) ScatterFrame(df *DataFrame, x, y string, style AesMapping) (*Points, error) {
	xs, err := df.numeric(x)
	if err != nil {
		return nil, err
	}
	ys, err := df.numeric(y)
	if err != nil {
		return nil, err
	}
	return p.Scatter(xs, ys, MergeStyles(style, AesMapping{"label": y}))
}

// BarFrame draws value per category. A numeric category column gives
// bars at numeric positions. Horizontal bars are drawn if horizontal
// is set.
func (p *Panel) BarFrame(df *DataFrame, category, value string, horizontal bool, style AesMapping) ([]*Rect, error) {
	vs, err := df.numeric(value)
	if err != nil {
		return nil, err
	}
	cf, err := df.Field(category)
	if err != nil {
		return nil, err
	}
	style = MergeStyles(style, AesMapping{"label": value})
	if cf.Type == String {
		if horizontal {
			return p.BarH(cf.Str, vs, style)
		}
		return p.Bar(cf.Str, vs, style)
	}
	pos, err := cf.Floats()
	if err != nil {
		return nil, err
	}
	if horizontal {
		return p.BarHAt(pos, vs, style)
	}
	return p.BarAt(pos, vs, style)
}
