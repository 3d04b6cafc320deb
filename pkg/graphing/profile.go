package graphing

import (
	"fmt"
	"sort"
)

// Profile bundles the layout constants and embellishments of all charts.
type Profile struct {
	Name        string
	Waveform    WaveformLayout
	Accumulator AccumulatorLayout
	Timeline    TimelineLayout
}

// WaveformLayout configures the stacked signal panels.
type WaveformLayout struct {
	Width       float64
	PanelHeight float64
	Margin      float64
	StrokeWidth float64
	LabelOffset float64
	LabelSize   float64
	PanelFill   string
	// Gridlines are fractions of the inner panel height.
	Gridlines []float64
	Features  bool
}

// AccumulatorLayout configures the accumulator trend chart.
type AccumulatorLayout struct {
	Width        float64
	Height       float64
	Margin       float64
	StrokeWidth  float64
	TitleY       float64
	TitleSize    float64
	PanelFill    string
	MarkerRadius float64
	MarkerFill   string
	// Highlight marks accumulate instructions with a larger dot and the
	// operand they added.
	Highlight bool
}

// TimelineLayout configures the opcode timeline.
type TimelineLayout struct {
	Width     float64
	Height    float64
	Margin    float64
	TitleSize float64
	TitleTop  bool
	PanelFill string
	Legend    bool
	Ticks     bool
}

const (
	ProfileAnnotated = "annotated"
	ProfileCompact   = "compact"

	DefaultProfile = ProfileAnnotated
)

var profiles = map[string]Profile{
	ProfileAnnotated: {
		Name: ProfileAnnotated,
		Waveform: WaveformLayout{
			Width:       1100,
			PanelHeight: 220,
			Margin:      60,
			StrokeWidth: 3,
			LabelOffset: 25,
			LabelSize:   18,
			PanelFill:   "#fafafa",
			Gridlines:   []float64{0.25, 0.5, 0.75},
			Features:    true,
		},
		Accumulator: AccumulatorLayout{
			Width:        1100,
			Height:       360,
			Margin:       70,
			StrokeWidth:  4,
			TitleY:       45,
			TitleSize:    20,
			PanelFill:    "#fafafa",
			MarkerRadius: 3,
			MarkerFill:   "#8ad18a",
			Highlight:    true,
		},
		Timeline: TimelineLayout{
			Width:     1100,
			Height:    260,
			Margin:    60,
			TitleSize: 20,
			TitleTop:  true,
			PanelFill: "#fafafa",
			Legend:    true,
			Ticks:     true,
		},
	},
	ProfileCompact: {
		Name: ProfileCompact,
		Waveform: WaveformLayout{
			Width:       900,
			PanelHeight: 180,
			Margin:      40,
			StrokeWidth: 2,
			LabelOffset: 20,
			LabelSize:   16,
			PanelFill:   "none",
		},
		Accumulator: AccumulatorLayout{
			Width:        900,
			Height:       300,
			Margin:       50,
			StrokeWidth:  2,
			TitleY:       30,
			TitleSize:    18,
			PanelFill:    "none",
			MarkerRadius: 4,
			MarkerFill:   "#2ca02c",
		},
		Timeline: TimelineLayout{
			Width:     900,
			Height:    220,
			Margin:    40,
			TitleSize: 16,
			PanelFill: "none",
		},
	},
}

// LookupProfile returns the named profile.
func LookupProfile(name string) (*Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s (valid: %v)", name, ProfileNames())
	}
	return &p, nil
}

// ProfileNames returns the names of all profiles in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
