// render_html.go interprets a chart spec with go-echarts for interactive
// HTML output. The first data layer picks the echarts chart type; ABLine
// layers overlay scatterplots as line series.
package plot

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/dataplot/config"
)

// RenderHTML validates the spec and writes a self-contained HTML page.
func (c *Chart) RenderHTML(w io.Writer) error {
	if err := c.validate(); err != nil {
		return err
	}
	st := c.resolveStyles()
	dpi := float64(config.GetConfig().DPI)
	init := opts.Initialization{
		Width:  fmt.Sprintf("%dpx", int(c.width*dpi)),
		Height: fmt.Sprintf("%dpx", int(c.height*dpi)),
	}

	switch v := c.layers[0].(type) {
	case Points:
		return renderScatterHTML(w, c.layers, v, st, init)
	case Histogram:
		return renderHistogramHTML(w, v, st, init)
	case Box:
		return renderBoxHTML(w, v, st, init)
	case ABLine:
		return fmt.Errorf("dataplot: a reference line cannot be the only layer of an HTML chart")
	}
	return fmt.Errorf("dataplot: unsupported layer %q", c.layers[0].geometry())
}

func renderScatterHTML(w io.Writer, layers []Layer, p Points, st styles, init opts.Initialization) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: st.title}),
		charts.WithXAxisOpts(opts.XAxis{Name: st.xLab, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: st.yLab, Type: "value"}),
	)

	xCol, err := numericCol(p.Data, p.X)
	if err != nil {
		return err
	}
	yCol, err := numericCol(p.Data, p.Y)
	if err != nil {
		return err
	}

	groupOf := func(i int) string { return p.Y }
	if p.Color != "" {
		cCol, err := p.Data.Column(p.Color)
		if err != nil {
			return err
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
	grouped := map[string][]opts.ScatterData{}
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < p.Data.Len(); i++ {
		x, okX := xCol.Float(i)
		y, okY := yCol.Float(i)
		if !okX || !okY {
			continue
		}
		g := groupOf(i)
		if _, ok := grouped[g]; !ok {
			order = append(order, g)
		}
		grouped[g] = append(grouped[g], opts.ScatterData{Value: []interface{}{x, y}})
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
	}
	for _, g := range order {
		scatter.AddSeries(g, grouped[g])
	}

	// Overlay reference lines across the observed x range.
	for _, l := range layers[1:] {
		if ab, ok := l.(ABLine); ok && !math.IsInf(minX, 1) {
			line := charts.NewLine()
			line.SetXAxis([]float64{minX, maxX}).AddSeries("reference", []opts.LineData{
				{Value: []interface{}{minX, ab.Slope*minX + ab.Intercept}},
				{Value: []interface{}{maxX, ab.Slope*maxX + ab.Intercept}},
			})
			scatter.Overlap(line)
		}
	}
	return scatter.Render(w)
}

func renderHistogramHTML(w io.Writer, h Histogram, st styles, init opts.Initialization) error {
	all, err := numericColumn(h.Data, h.X)
	if err != nil {
		return err
	}
	bins, err := computeBins(all, h.Bins)
	if err != nil {
		return err
	}

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))
	for i, b := range bins {
		labels[i] = fmt.Sprintf("%.4g-%.4g", b.lo, b.hi)
		data[i] = opts.BarData{Value: b.count}
	}

	yName := st.yLab
	if yName == "" {
		yName = "count"
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: st.title}),
		charts.WithXAxisOpts(opts.XAxis{Name: st.xLab}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	bar.SetXAxis(labels).AddSeries(h.X, data)
	return bar.Render(w)
}

func renderBoxHTML(w io.Writer, b Box, st styles, init opts.Initialization) error {
	name := b.Y
	if name == "" {
		name = b.X
	}
	vals, err := numericColumn(b.Data, name)
	if err != nil {
		return err
	}
	bs, err := computeBox(vals)
	if err != nil {
		return err
	}

	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: st.title}),
		charts.WithYAxisOpts(opts.YAxis{Name: st.yLab}),
	)
	box.SetXAxis([]string{name}).AddSeries(name, []opts.BoxPlotData{
		{Value: []float64{bs.whiskerLo, bs.q1, bs.median, bs.q3, bs.whiskerHi}},
	})
	return box.Render(w)
}
