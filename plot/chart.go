// Package plot builds charts declaratively: data layers bind table columns
// to visual channels, style layers set theme and labels, and nothing is
// drawn until a render call interprets the accumulated spec.
package plot

import (
	"fmt"

	"github.com/pivolan/dataplot"
	"github.com/pivolan/go_utils"
)

// DefaultBins is the histogram bin count when a layer does not set one.
const DefaultBins = 30

// Default chart size in abstract units; renderers scale by the configured
// DPI.
const (
	DefaultWidth  = 5.0
	DefaultHeight = 3.5
)

var themes = []string{"gray", "bw", "minimal"}

// Layer is one data layer of a chart: a geometry plus channel bindings.
type Layer interface {
	geometry() string
	validate() error
}

// Points is a scatterplot layer. X and Y are required numeric channels;
// Color optionally maps a categorical column to the point palette.
type Points struct {
	Data  *dataplot.Table
	X, Y  string
	Color string
}

func (p Points) geometry() string { return "point" }

func (p Points) validate() error {
	if p.X == "" {
		return &dataplot.MissingChannelError{Geometry: "point", Channel: "x"}
	}
	if p.Y == "" {
		return &dataplot.MissingChannelError{Geometry: "point", Channel: "y"}
	}
	return nil
}

// Histogram bins the X channel into Bins equal-width intervals. Fill
// optionally maps a categorical column to per-group bars; with identity
// position the groups are drawn overlapping at Alpha opacity.
type Histogram struct {
	Data  *dataplot.Table
	X     string
	Fill  string
	Bins  int
	Alpha float64
}

func (h Histogram) geometry() string { return "histogram" }

func (h Histogram) validate() error {
	if h.X == "" {
		return &dataplot.MissingChannelError{Geometry: "histogram", Channel: "x"}
	}
	return nil
}

// Box is a boxplot layer over a single numeric column: exactly one of X
// (horizontal box) or Y (vertical box) must be bound.
type Box struct {
	Data *dataplot.Table
	X, Y string
}

func (b Box) geometry() string { return "boxplot" }

func (b Box) validate() error {
	if (b.X == "") == (b.Y == "") {
		return &dataplot.MissingChannelError{Geometry: "boxplot", Channel: "exactly one of x or y"}
	}
	return nil
}

// ABLine draws the reference line y = Slope*x + Intercept across the chart.
// It carries no table.
type ABLine struct {
	Slope     float64
	Intercept float64
}

func (l ABLine) geometry() string { return "abline" }
func (l ABLine) validate() error  { return nil }

type styleKind int

const (
	styleTheme styleKind = iota
	styleTitle
	styleXLab
	styleYLab
)

type styleLayer struct {
	kind  styleKind
	value string
}

// Chart is an accumulating chart spec. Methods return the receiver so a
// chart reads as one builder chain.
type Chart struct {
	layers []Layer
	styles []styleLayer
	width  float64
	height float64
}

// New returns an empty chart spec at the default size.
func New() *Chart {
	return &Chart{width: DefaultWidth, height: DefaultHeight}
}

// Add appends a data layer. Later layers draw on top of earlier ones.
func (c *Chart) Add(l Layer) *Chart {
	c.layers = append(c.layers, l)
	return c
}

// Theme selects a global theme: gray, bw or minimal.
func (c *Chart) Theme(name string) *Chart {
	c.styles = append(c.styles, styleLayer{styleTheme, name})
	return c
}

// Title sets the chart title.
func (c *Chart) Title(s string) *Chart {
	c.styles = append(c.styles, styleLayer{styleTitle, s})
	return c
}

// XLab sets the x axis label.
func (c *Chart) XLab(s string) *Chart {
	c.styles = append(c.styles, styleLayer{styleXLab, s})
	return c
}

// YLab sets the y axis label.
func (c *Chart) YLab(s string) *Chart {
	c.styles = append(c.styles, styleLayer{styleYLab, s})
	return c
}

// Size sets the chart size in units.
func (c *Chart) Size(width, height float64) *Chart {
	c.width, c.height = width, height
	return c
}

// validate checks every layer's required channels, the bound columns and
// the style values. Style layers are global, so position never matters.
func (c *Chart) validate() error {
	if len(c.layers) == 0 {
		return fmt.Errorf("dataplot: chart has no layers")
	}
	for _, l := range c.layers {
		if err := l.validate(); err != nil {
			return err
		}
		if err := checkColumns(l); err != nil {
			return err
		}
	}
	for _, s := range c.styles {
		if s.kind == styleTheme && !go_utils.InArray(s.value, themes) {
			return fmt.Errorf("dataplot: unknown theme %q", s.value)
		}
	}
	return nil
}

func checkColumns(l Layer) error {
	switch v := l.(type) {
	case Points:
		for _, name := range []string{v.X, v.Y} {
			if _, err := v.Data.Column(name); err != nil {
				return err
			}
		}
		if v.Color != "" {
			if _, err := v.Data.Column(v.Color); err != nil {
				return err
			}
		}
	case Histogram:
		if _, err := v.Data.Column(v.X); err != nil {
			return err
		}
		if v.Fill != "" {
			if _, err := v.Data.Column(v.Fill); err != nil {
				return err
			}
		}
	case Box:
		name := v.Y
		if name == "" {
			name = v.X
		}
		if _, err := v.Data.Column(name); err != nil {
			return err
		}
	}
	return nil
}

// resolved style values, last writer wins per kind.
type styles struct {
	theme string
	title string
	xLab  string
	yLab  string
}

func (c *Chart) resolveStyles() styles {
	s := styles{theme: "gray"}
	for _, layer := range c.styles {
		switch layer.kind {
		case styleTheme:
			s.theme = layer.value
		case styleTitle:
			s.title = layer.value
		case styleXLab:
			s.xLab = layer.value
		case styleYLab:
			s.yLab = layer.value
		}
	}
	return s
}
