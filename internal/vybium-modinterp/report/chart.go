package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// RenderChart writes an HTML page plotting, for every index i of the pairs
// used, the reduced values x_i and y_i next to P_x(i) and P_y(i).
func RenderChart(w io.Writer, r *FileResult, modulus int64) error {
	if !r.OK() {
		return fmt.Errorf("no polynomials to chart for %s", r.Name)
	}

	used := r.Used()
	xItems := make([]opts.ScatterData, 0, len(used))
	yItems := make([]opts.ScatterData, 0, len(used))
	pxItems := make([]opts.ScatterData, 0, len(used))
	pyItems := make([]opts.ScatterData, 0, len(used))
	for i, p := range used {
		x, y := p.Reduce(modulus)
		idx := int64(i)
		xItems = append(xItems, opts.ScatterData{Value: []interface{}{idx, x}})
		yItems = append(yItems, opts.ScatterData{Value: []interface{}{idx, y}})
		pxItems = append(pxItems, opts.ScatterData{Value: []interface{}{idx, r.XPoly.Eval(idx)}})
		pyItems = append(pyItems, opts.ScatterData{Value: []interface{}{idx, r.YPoly.Eval(idx)}})
	}

	title := fmt.Sprintf("%s (mod %d)", r.Name, modulus)
	page := components.NewPage().SetPageTitle(title)

	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("P_x(i) = %s | P_y(i) = %s", r.XPoly, r.YPoly),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "index i",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: fmt.Sprintf("residue mod %d", modulus),
			Type: "value",
			Max:  modulus - 1,
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
	)

	sc.AddSeries("x_i", xItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}),
	)
	sc.AddSeries("P_x(i)", pxItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 5}),
	)
	sc.AddSeries("y_i", yItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}),
	)
	sc.AddSeries("P_y(i)", pyItems,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "diamond", SymbolSize: 5}),
	)

	page.AddCharts(sc)
	return page.Render(w)
}

// ChartPath returns the HTML file name for a result inside dir
func ChartPath(dir, name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	return filepath.Join(dir, base+".html")
}

// SaveChart renders the chart for r into dir
func SaveChart(dir string, r *FileResult, modulus int64) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory %s: %w", dir, err)
	}

	path := ChartPath(dir, r.Name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := RenderChart(f, r, modulus); err != nil {
		return "", fmt.Errorf("render error: %w", err)
	}
	return path, nil
}
