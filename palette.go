package wbplot

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"
)

// ErrUnknownPalette is returned for palette names not in the registry.
var ErrUnknownPalette = errors.New("wbplot: unknown palette")

// Swatch is a named colour of a palette.
type Swatch struct {
	Key, Hex string
}

// palettes is the brand registry. Swatch order is significant for
// cycles and gradients.
var palettes = map[string][]Swatch{
	"wb_categorical": {
		{"cat1", "#34A7F2"},
		{"cat2", "#FF9800"},
		{"cat3", "#664AB6"},
		{"cat4", "#4EC2C0"},
		{"cat5", "#F3578E"},
		{"cat6", "#081079"},
		{"cat7", "#0C7C68"},
		{"cat8", "#AA0000"},
		{"cat9", "#DDDA21"},
	},
	"wb_categorical_text": {
		{"cat1Text", "#106CA1"},
		{"cat2Text", "#B65F0C"},
		{"cat3Text", "#664AB6"},
		{"cat4Text", "#208383"},
		{"cat5Text", "#BB3B64"},
		{"cat6Text", "#081079"},
		{"cat7Text", "#0C7C68"},
		{"cat8Text", "#AA0000"},
		{"cat9Text", "#767712"},
	},
	"wb_region": {
		{"WLD", "#081079"},
		{"NAC", "#34A7F2"},
		{"LCN", "#0C7C68"},
		{"SAS", "#4EC2C0"},
		{"MEA", "#664AB6"},
		{"ECS", "#AA0000"},
		{"EAS", "#F3578E"},
		{"SSF", "#FF9800"},
		{"AFE", "#FF9800"},
		{"AFW", "#DDDA21"},
	},
	"wb_region_text": {
		{"NACText", "#106CA1"},
		{"SSFText", "#B65F0C"},
		{"AFEText", "#B65F0C"},
		{"MEAText", "#664AB6"},
		{"SASText", "#208383"},
		{"EASText", "#BB3B64"},
		{"WLDText", "#081079"},
		{"LCNText", "#0C7C68"},
		{"ECSText", "#AA0000"},
		{"AFWText", "#767712"},
	},
	"wb_seq_bad_to_good": {
		{"seq1", "#FDF6DB"},
		{"seq2", "#A1CBCF"},
		{"seq3", "#5D99C2"},
		{"seq4", "#2868A0"},
		{"seq5", "#023B6F"},
	},
	"wb_seq_good_to_bad": {
		{"seqRev1", "#E3F6FD"},
		{"seqRev2", "#91C5F0"},
		{"seqRev3", "#8B8AC0"},
		{"seqRev4", "#88506E"},
		{"seqRev5", "#691B15"},
	},
	"wb_div_default": {
		{"divNeg3", "#920000"},
		{"divNeg2", "#BD6126"},
		{"divNeg1", "#E3A763"},
		{"divMid", "#EFEFEF"},
		{"divPos1", "#80BDE7"},
		{"divPos2", "#3587C3"},
		{"divPos3", "#025288"},
	},
	"wb_div_alt": {
		{"div3L3", "#002c8b"},
		{"div3L2", "#4868af"},
		{"div3L1", "#79a7d5"},
		{"div3Mid", "#efefef"},
		{"div3R1", "#eca08c"},
		{"div3R2", "#c9573e"},
		{"div3R3", "#920000"},
	},
	"wb_income": {
		{"HIC", "#016B6C"},
		{"UMC", "#73AF48"},
		{"LMC", "#DB95D7"},
		{"LIC", "#3B4DA6"},
	},
	"wb_gender": {
		{"male", "#664AB6"},
		{"female", "#FF9800"},
		{"diverse", "#4EC2C0"},
	},
	"wb_urbanisation": {
		{"rural", "#54AE89"},
		{"urban", "#6D88D1"},
	},
	"wb_age": {
		{"youngestAge", "#F8A8DF"},
		{"youngerAge", "#B38FD8"},
		{"middleAge", "#462f98"},
		{"olderAge", "#6D88D1"},
		{"oldestAge", "#A1C6FF"},
	},
	"wb_binary": {
		{"yes", "#0071BC"},
		{"no", "#EBEEF4"},
	},
	"wb_total": {
		{"total", "#163C6C"},
	},
	"wb_reference": {
		{"reference", "#8A969F"},
	},
	"wb_noData": {
		{"noData", "#CED4DE"},
	},
	"wb_highlight_selection": {
		{"selection1", "#0071BC"},
		{"selection2", "#8963C1"},
	},
	"wb_text_colors": {
		{"text", "#111111"},
		{"textSubtle", "#666666"},
	},
	"wb_greys": {
		{"grey500", "#111111"},
		{"grey400", "#666666"},
		{"grey300", "#8a969f"},
		{"grey200", "#CED4DE"},
		{"grey100", "#EBEEF4"},
	},
	"wb_seq_monochrome_blue": {
		{"seqB1", "#E3F6FD"},
		{"seqB2", "#75CCEC"},
		{"seqB3", "#089BD4"},
		{"seqB4", "#0169A1"},
		{"seqB5", "#023B6F"},
	},
	"wb_seq_monochrome_yellow": {
		{"seqY1", "#FDF7DB"},
		{"seqY2", "#ECB63A"},
		{"seqY3", "#BE792B"},
		{"seqY4", "#8D4117"},
		{"seqY5", "#5C0000"},
	},
	"wb_seq_monochrome_purple": {
		{"seqP1", "#FFE2FF"},
		{"seqP2", "#D3ACE6"},
		{"seqP3", "#A37ACD"},
		{"seqP4", "#6F4CB4"},
		{"seqP5", "#2F1E9C"},
	},
	"wb_seq_monochrome_green": {
		{"seqG1", "#d2ffe1"},
		{"seqG2", "#8ad4a7"},
		{"seqG3", "#54a67f"},
		{"seqG4", "#27795a"},
		{"seqG5", "#084d31"},
	},
	"wb_seq_monochrome_red": {
		{"seqR1", "#ffd6b9"},
		{"seqR2", "#f99c78"},
		{"seqR3", "#e56245"},
		{"seqR4", "#c1261a"},
		{"seqR5", "#870000"},
	},
	"wb_div_neutral": {
		{"div2L3", "#24768E"},
		{"div2L2", "#4EA2AC"},
		{"div2L1", "#98CBCC"},
		{"div2Mid", "#EFEFEF"},
		{"div2R1", "#D1AEE3"},
		{"div2R2", "#A873C4"},
		{"div2R3", "#754493"},
	},
	"wb_pillars": {
		{"people", "#f7b841"},
		{"planet", "#07ab50"},
		{"prosperity", "#872c8f"},
		{"infrastructure", "#91302f"},
		{"digital", "#5d6472"},
		{"corporate", "#004972"},
	},
}

// companionText names the text colour palette of a label map.
var companionText = map[string]string{
	"wb_region":      "wb_region_text",
	"wb_categorical": "wb_categorical_text",
}

// labelMapOnly palettes always recolour by label.
var labelMapOnly = NewStringSetFrom([]string{
	"wb_region", "wb_region_secondary", "wb_age", "wb_gender",
	"wb_income", "wb_binary", "wb_total", "wb_pillars",
})

// autoCycleOnly palettes always become the colour cycle.
var autoCycleOnly = NewStringSetFrom([]string{
	"wb_categorical", "wb_categorical_text", "wb_region_text",
	"wb_reference", "wb_noData", "wb_highlight_selection",
	"wb_text_colors", "wb_greys",
	"wb_seq_bad_to_good", "wb_seq_good_to_bad",
	"wb_seq_monochrome_blue", "wb_seq_monochrome_green",
	"wb_seq_monochrome_red", "wb_seq_monochrome_yellow",
	"wb_seq_monochrome_purple",
	"wb_div_default", "wb_div_neutral", "wb_div_alt",
})

// PaletteNames lists the registered palettes in alphabetical order.
func PaletteNames() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// PaletteSwatches returns the swatches of a registered palette.
func PaletteSwatches(name string) ([]Swatch, error) {
	sw, ok := palettes[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
	return append([]Swatch(nil), sw...), nil
}

func isGradient(name string) bool {
	return strings.Contains(name, "seq") || strings.Contains(name, "div")
}

// Resolved is a palette turned into what the pipeline applies. At most
// one of Cycle and LabelMap is set.
type Resolved struct {
	Name     string
	Cycle    []color.Color
	LabelMap map[string]color.Color
	TextMap  map[string]color.Color
	Colormap *Colormap
}

// ResolvePalette looks up name. Sequential and diverging palettes also
// yield a continuous colormap. A positive n truncates cycles. The empty
// name resolves to nothing.
func ResolvePalette(name string, n int) (Resolved, error) {
	r := Resolved{Name: name}
	if name == "" {
		return r, nil
	}
	sw, ok := palettes[name]
	if !ok {
		return r, fmt.Errorf("%q: %w", name, ErrUnknownPalette)
	}
	colors := make([]color.Color, len(sw))
	for i, s := range sw {
		colors[i] = hex(s.Hex)
	}

	if isGradient(name) {
		cm, err := NewColormap(name, colors)
		if err != nil {
			return r, err
		}
		r.Colormap = cm
	}

	asCycle := !labelMapOnly.Contains(name) && (autoCycleOnly.Contains(name) || isGradient(name))
	if asCycle {
		if n > 0 && n < len(colors) {
			colors = colors[:n]
		}
		r.Cycle = colors
		return r, nil
	}

	r.LabelMap = make(map[string]color.Color, len(sw))
	for i, s := range sw {
		r.LabelMap[s.Key] = colors[i]
	}
	if comp, ok := companionText[name]; ok {
		r.TextMap = textMap(palettes[comp])
	}
	return r, nil
}

// textMap keys text colours both by swatch key and by the key without
// its "Text" suffix, so that an annotation "NAC" finds "NACText".
func textMap(sw []Swatch) map[string]color.Color {
	m := make(map[string]color.Color, 2*len(sw))
	for _, s := range sw {
		c := hex(s.Hex)
		m[s.Key] = c
		if k := strings.TrimSuffix(s.Key, "Text"); k != s.Key {
			m[k] = c
		}
	}
	return m
}

// Recolor sets the colour of every labelled line, point collection and
// rectangle whose label is a key of the label map.
func (r Resolved) Recolor(p *Panel) {
	if len(r.LabelMap) == 0 {
		return
	}
	for _, a := range p.artifacts {
		switch a := a.(type) {
		case *Line:
			if c, ok := r.LabelMap[a.Label]; ok {
				a.Color = c
			}
		case *Points:
			if c, ok := r.LabelMap[a.Label]; ok {
				a.Color = c
			}
		case *Rect:
			if c, ok := r.LabelMap[a.Label]; ok {
				a.Color = c
			}
		}
	}
}

// ColorTexts colours text annotations whose text is a key of the text
// map.
func (r Resolved) ColorTexts(p *Panel) {
	if len(r.TextMap) == 0 {
		return
	}
	for _, a := range p.artifacts {
		if t, ok := a.(*Text); ok && t.Role == RoleUser {
			if c, ok := r.TextMap[t.Text]; ok {
				t.Style.Color = c
			}
		}
	}
}
