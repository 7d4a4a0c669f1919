package wbplot

import (
	"math"
	"strconv"

	humanize "github.com/dustin/go-humanize"
)

// NumberFormat controls FormatNumber.
type NumberFormat struct {
	// Unit is appended to the scale suffix. The units watt, tons, bits
	// and bytes are abbreviated and turn B into G.
	Unit     string
	Percent  bool
	Currency bool
}

var specialUnits = map[string]string{
	"watt":  "w",
	"tons":  "t",
	"bits":  "b",
	"bytes": "B",
}

// FormatNumber renders v for labels: whole numbers from 1000 to 2100
// are years and print verbatim, large values are scaled to K, M or B,
// and unscaled values from 1000 on get thousands separators.
func FormatNumber(v float64, f NumberFormat) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	whole := v == math.Trunc(v)
	if whole && v >= 1000 && v <= 2100 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	abs := math.Abs(v)
	scaled, suffix := v, ""
	switch {
	case abs >= 1e9:
		scaled, suffix = v/1e9, "B"
	case abs >= 1e6:
		scaled, suffix = v/1e6, "M"
	case abs >= 1e4:
		scaled, suffix = v/1e3, "K"
	}

	if u, ok := specialUnits[f.Unit]; ok {
		switch suffix {
		case "B":
			suffix = "G" + u
		case "M", "K":
			suffix += u
		}
	} else {
		suffix += f.Unit
	}

	prec := 0
	if !whole {
		switch as := math.Abs(scaled); {
		case as < 1:
			prec = 2
		case as < 100:
			prec = 1
		}
	}
	s := strconv.FormatFloat(scaled, 'f', prec, 64)
	if suffix == "" && abs >= 1000 {
		s = humanize.Comma(int64(math.RoundToEven(v)))
	}

	if f.Currency {
		s = "$" + s
	}
	if f.Percent {
		s += "%"
	}
	return s + suffix
}
