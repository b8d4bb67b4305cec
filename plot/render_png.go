// render_png.go interprets a chart spec with wcharczuk/go-chart and renders
// it to PNG bytes.
package plot

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	uuid "github.com/satori/go.uuid"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pivolan/dataplot"
	"github.com/pivolan/dataplot/config"
)

// RenderPNG validates the spec and draws it. Layers render in order, later
// layers on top; style layers apply globally wherever they were added.
func (c *Chart) RenderPNG() ([]byte, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	st := c.resolveStyles()
	dpi := float64(config.GetConfig().DPI)
	width := int(c.width * dpi)
	height := int(c.height * dpi)

	// A lone unfilled histogram keeps the labeled-bar look; everything else
	// goes through the composite cartesian path.
	if len(c.layers) == 1 {
		if h, ok := c.layers[0].(Histogram); ok && h.Fill == "" {
			return renderBarHistogram(h, st, width, height)
		}
	}
	return renderComposite(c.layers, st, width, height)
}

// SavePNG renders the chart and writes it to a uniquely named file under
// dir (the configured output directory when dir is empty). It returns the
// file path.
func (c *Chart) SavePNG(dir string) (string, error) {
	if dir == "" {
		dir = config.GetConfig().OutputDir
	}
	png, err := c.RenderPNG()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, fmt.Sprintf("chart_%s.png", uuid.NewV4()))
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", &dataplot.IOError{Path: path, Err: err}
	}
	return path, nil
}

// renderBarHistogram draws one bar per bin with "lo-hi" range labels.
func renderBarHistogram(h Histogram, st styles, width, height int) ([]byte, error) {
	xs, err := numericColumn(h.Data, h.X)
	if err != nil {
		return nil, err
	}
	bins, err := computeBins(xs, h.Bins)
	if err != nil {
		return nil, err
	}

	bars := make([]chart.Value, len(bins))
	for i, b := range bins {
		bars[i] = chart.Value{
			Value: float64(b.count),
			Label: fmt.Sprintf("%.4g-%.4g", b.lo, b.hi),
		}
	}

	yName := st.yLab
	if yName == "" {
		yName = "count"
	}
	graph := chart.BarChart{
		Title:    st.title,
		Width:    width,
		Height:   height,
		BarWidth: barWidth(width, len(bins)),
		Bars:     bars,
		YAxis: chart.YAxis{
			Name: yName,
		},
	}
	applyBarTheme(&graph, st.theme)

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

func barWidth(chartWidth, bins int) int {
	w := chartWidth/(bins+2) - 4
	if w < 2 {
		w = 2
	}
	if w > 60 {
		w = 60
	}
	return w
}

// renderComposite draws every layer into one cartesian chart.
func renderComposite(layers []Layer, st styles, width, height int) ([]byte, error) {
	var series []chart.Series
	var xAxis chart.XAxis
	var yAxis chart.YAxis

	// Reference lines span the x range of the data layers.
	minX, maxX := math.Inf(1), math.Inf(-1)
	boxOnly, boxVertical := true, true
	colorIndex := 0

	for _, l := range layers {
		switch v := l.(type) {
		case Points:
			boxOnly = false
			ss, lo, hi, err := pointSeries(v, &colorIndex)
			if err != nil {
				return nil, err
			}
			series = append(series, ss...)
			minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
		case Histogram:
			boxOnly = false
			ss, lo, hi, err := histogramSeries(v, &colorIndex)
			if err != nil {
				return nil, err
			}
			series = append(series, ss...)
			minX, maxX = math.Min(minX, lo), math.Max(maxX, hi)
		case Box:
			if v.Y == "" {
				boxVertical = false
			}
			ss, err := boxSeries(v, &colorIndex)
			if err != nil {
				return nil, err
			}
			series = append(series, ss...)
		}
	}
	if math.IsInf(minX, 1) {
		minX, maxX = 0, 1
	}
	for _, l := range layers {
		if ab, ok := l.(ABLine); ok {
			series = append(series, chart.ContinuousSeries{
				XValues: []float64{minX, maxX},
				YValues: []float64{ab.Slope*minX + ab.Intercept, ab.Slope*maxX + ab.Intercept},
				Style: chart.Style{
					StrokeColor:     drawing.ColorRed,
					StrokeWidth:     2,
					StrokeDashArray: []float64{5.0, 5.0},
				},
			})
		}
	}

	xAxis.Name = st.xLab
	yAxis.Name = st.yLab
	if boxOnly {
		// The category axis of a lone boxplot carries no scale.
		if boxVertical {
			xAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		} else {
			yAxis.Range = &chart.ContinuousRange{Min: 0, Max: 1}
		}
	}

	graph := chart.Chart{
		Title:  st.title,
		Width:  width,
		Height: height,
		XAxis:  xAxis,
		YAxis:  yAxis,
		Series: series,
	}
	applyTheme(&graph, st.theme)

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("error rendering chart: %v", err)
	}
	return buffer.Bytes(), nil
}

// pointSeries builds one dot series per color group, groups in
// first-appearance order, rows with a missing x or y skipped.
func pointSeries(p Points, colorIndex *int) ([]chart.Series, float64, float64, error) {
	xCol, err := numericCol(p.Data, p.X)
	if err != nil {
		return nil, 0, 0, err
	}
	yCol, err := numericCol(p.Data, p.Y)
	if err != nil {
		return nil, 0, 0, err
	}

	groupOf := func(i int) string { return "" }
	if p.Color != "" {
		cCol, err := p.Data.Column(p.Color)
		if err != nil {
			return nil, 0, 0, err
		}
		groupOf = func(i int) string {
			if cCol.IsMissing(i) {
				return "<missing>"
			}
			if s, ok := cCol.Str(i); ok {
				return s
			}
			v, _ := cCol.Float(i)
			return fmt.Sprint(v)
		}
	}

	order := []string{}
	grouped := map[string]*chart.ContinuousSeries{}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < p.Data.Len(); i++ {
		x, okX := xCol.Float(i)
		y, okY := yCol.Float(i)
		if !okX || !okY {
			continue
		}
		g := groupOf(i)
		s, ok := grouped[g]
		if !ok {
			s = &chart.ContinuousSeries{
				Name: g,
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    4,
					DotColor:    chart.GetDefaultColor(*colorIndex),
				},
			}
			*colorIndex++
			grouped[g] = s
			order = append(order, g)
		}
		s.XValues = append(s.XValues, x)
		s.YValues = append(s.YValues, y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
	}

	series := make([]chart.Series, 0, len(order))
	for _, g := range order {
		series = append(series, *grouped[g])
	}
	return series, minX, maxX, nil
}

// histogramSeries draws bins as step areas, one per fill group over shared
// bin edges, overlapping at the layer's opacity (identity position).
func histogramSeries(h Histogram, colorIndex *int) ([]chart.Series, float64, float64, error) {
	xCol, err := numericCol(h.Data, h.X)
	if err != nil {
		return nil, 0, 0, err
	}
	all, err := numericColumn(h.Data, h.X)
	if err != nil {
		return nil, 0, 0, err
	}
	allBins, err := computeBins(all, h.Bins)
	if err != nil {
		return nil, 0, 0, err
	}

	alpha := h.Alpha
	if alpha <= 0 || alpha > 1 {
		alpha = 0.6
	}
	if h.Fill == "" {
		alpha = 1
	}

	// Partition rows by fill label, first-appearance order.
	order := []string{}
	rowsOf := map[string][]int{}
	if h.Fill == "" {
		order = append(order, "")
		for i := 0; i < h.Data.Len(); i++ {
			rowsOf[""] = append(rowsOf[""], i)
		}
	} else {
		fCol, err := h.Data.Column(h.Fill)
		if err != nil {
			return nil, 0, 0, err
		}
		for i := 0; i < h.Data.Len(); i++ {
			g := "<missing>"
			if !fCol.IsMissing(i) {
				if s, ok := fCol.Str(i); ok {
					g = s
				} else {
					v, _ := fCol.Float(i)
					g = fmt.Sprint(v)
				}
			}
			if _, ok := rowsOf[g]; !ok {
				order = append(order, g)
			}
			rowsOf[g] = append(rowsOf[g], i)
		}
	}

	series := []chart.Series{}
	for _, g := range order {
		counts := make([]int, len(allBins))
		for _, i := range rowsOf[g] {
			x, ok := xCol.Float(i)
			if !ok {
				continue
			}
			counts[binIndex(allBins, x)]++
		}

		// Trace the bin tops as a step outline closed down to zero.
		xs := []float64{allBins[0].lo}
		ys := []float64{0}
		for bi, b := range allBins {
			xs = append(xs, b.lo, b.hi)
			ys = append(ys, float64(counts[bi]), float64(counts[bi]))
		}
		xs = append(xs, allBins[len(allBins)-1].hi)
		ys = append(ys, 0)

		color := chart.GetDefaultColor(*colorIndex)
		*colorIndex++
		series = append(series, chart.ContinuousSeries{
			Name:    g,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color,
				StrokeWidth: 1,
				FillColor:   color.WithAlpha(uint8(alpha * 255)),
			},
		})
	}
	return series, allBins[0].lo, allBins[len(allBins)-1].hi, nil
}

func binIndex(bins []bin, x float64) int {
	lo := bins[0].lo
	hi := bins[len(bins)-1].hi
	if hi == lo {
		return 0
	}
	width := (hi - lo) / float64(len(bins))
	if x == lo {
		return 0
	}
	idx := int(math.Ceil((x-lo)/width)) - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(bins) {
		idx = len(bins) - 1
	}
	return idx
}

// boxSeries draws the box, median, whiskers and outlier dots as segment
// series. A Y binding stands the box upright, an X binding lays it flat.
func boxSeries(b Box, colorIndex *int) ([]chart.Series, error) {
	name := b.Y
	vertical := true
	if name == "" {
		name = b.X
		vertical = false
	}
	vals, err := numericColumn(b.Data, name)
	if err != nil {
		return nil, err
	}
	bs, err := computeBox(vals)
	if err != nil {
		return nil, err
	}

	color := chart.GetDefaultColor(*colorIndex)
	*colorIndex++
	stroke := chart.Style{StrokeColor: color, StrokeWidth: 2}

	const center, half = 0.5, 0.2
	seg := func(x1, y1, x2, y2 float64) chart.Series {
		if !vertical {
			x1, y1 = y1, x1
			x2, y2 = y2, x2
		}
		return chart.ContinuousSeries{
			XValues: []float64{x1, x2},
			YValues: []float64{y1, y2},
			Style:   stroke,
		}
	}

	series := []chart.Series{
		// box
		seg(center-half, bs.q1, center+half, bs.q1),
		seg(center+half, bs.q1, center+half, bs.q3),
		seg(center+half, bs.q3, center-half, bs.q3),
		seg(center-half, bs.q3, center-half, bs.q1),
		// median
		seg(center-half, bs.median, center+half, bs.median),
		// whiskers with caps
		seg(center, bs.q1, center, bs.whiskerLo),
		seg(center-half/2, bs.whiskerLo, center+half/2, bs.whiskerLo),
		seg(center, bs.q3, center, bs.whiskerHi),
		seg(center-half/2, bs.whiskerHi, center+half/2, bs.whiskerHi),
	}

	if len(bs.outliers) > 0 {
		xs := make([]float64, len(bs.outliers))
		ys := make([]float64, len(bs.outliers))
		for i, v := range bs.outliers {
			xs[i], ys[i] = center, v
			if !vertical {
				xs[i], ys[i] = v, center
			}
		}
		series = append(series, chart.ContinuousSeries{
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    3,
				DotColor:    color,
			},
		})
	}
	return series, nil
}

func applyTheme(graph *chart.Chart, theme string) {
	switch theme {
	case "gray":
		graph.Background = chart.Style{FillColor: drawing.ColorWhite}
		graph.Canvas = chart.Style{FillColor: drawing.ColorFromHex("efefef")}
	case "bw":
		graph.Background = chart.Style{FillColor: drawing.ColorWhite, StrokeColor: drawing.ColorBlack, StrokeWidth: 1}
		graph.Canvas = chart.Style{FillColor: drawing.ColorWhite}
	case "minimal":
		graph.Background = chart.Style{FillColor: drawing.ColorWhite}
		graph.Canvas = chart.Style{FillColor: drawing.ColorWhite}
	}
}

func applyBarTheme(graph *chart.BarChart, theme string) {
	switch theme {
	case "gray":
		graph.Background = chart.Style{FillColor: drawing.ColorWhite}
		graph.Canvas = chart.Style{FillColor: drawing.ColorFromHex("efefef")}
	default:
		graph.Background = chart.Style{FillColor: drawing.ColorWhite}
		graph.Canvas = chart.Style{FillColor: drawing.ColorWhite}
	}
}

// numericCol fetches a column and insists it is numeric.
func numericCol(t *dataplot.Table, name string) (*dataplot.Column, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if c.Kind() != dataplot.Numeric {
		return nil, fmt.Errorf("dataplot: channel column %q must be numeric", name)
	}
	return c, nil
}

// numericColumn extracts a numeric column as floats, missing cells as NaN.
func numericColumn(t *dataplot.Table, name string) ([]float64, error) {
	c, err := numericCol(t, name)
	if err != nil {
		return nil, err
	}
	vals := make([]float64, c.Len())
	for i := range vals {
		v, ok := c.Float(i)
		if !ok {
			v = math.NaN()
		}
		vals[i] = v
	}
	return vals, nil
}
