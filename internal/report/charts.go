package report

import (
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"eva-analytics/internal/model"
)

// RenderCharts draws every dashboard chart as a PNG inside dir and
// returns the generated file names.
func RenderCharts(dir string, d *model.Dashboard) ([]string, error) {
	charts := []struct {
		name   string
		render func(path string, d *model.Dashboard) error
	}{
		{"yearly_trend.png", yearTrendChart},
		{"department_ranking.png", departmentChart},
		{"sown_vs_production.png", scatterChart},
		{"yield_by_department.png", yieldBoxChart},
		{"lorenz_curve.png", lorenzChart},
	}

	var written []string
	for _, c := range charts {
		path := filepath.Join(dir, c.name)
		if err := c.render(path, d); err != nil {
			return written, fmt.Errorf("failed to render %s: %w", c.name, err)
		}
		written = append(written, c.name)
	}
	return written, nil
}

func yearTrendChart(path string, d *model.Dashboard) error {
	p := plot.New()
	p.Title.Text = "Production and Sown Area per Year"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Production (t)"
	p.Add(plotter.NewGrid())

	production := make(plotter.XYs, len(d.YearSeries))
	sown := make(plotter.XYs, len(d.YearSeries))
	for i, pt := range d.YearSeries {
		production[i].X = float64(pt.Year)
		production[i].Y = pt.ProductionT
		sown[i].X = float64(pt.Year)
		sown[i].Y = pt.SownHa
	}

	prodLine, err := plotter.NewLine(production)
	if err != nil {
		return err
	}
	prodLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	prodLine.Width = vg.Points(2)

	sownLine, err := plotter.NewLine(sown)
	if err != nil {
		return err
	}
	sownLine.Color = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	sownLine.Width = vg.Points(2)
	sownLine.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}

	p.Add(prodLine, sownLine)
	p.Legend.Add("Production (t)", prodLine)
	p.Legend.Add("Sown area (ha)", sownLine)
	p.Legend.Top = true

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func departmentChart(path string, d *model.Dashboard) error {
	rows := d.DepartmentRanking
	if len(rows) > 15 {
		rows = rows[:15]
	}

	p := plot.New()
	p.Title.Text = "Total Production by Department"
	p.Y.Label.Text = "Production (t)"

	values := make(plotter.Values, len(rows))
	names := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.Value
		names[i] = r.Key
	}

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}

	p.Add(bars)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.8

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

func scatterChart(path string, d *model.Dashboard) error {
	p := plot.New()
	p.Title.Text = "Sown Area vs Production by Department"
	p.X.Label.Text = "Sown area (ha)"
	p.Y.Label.Text = "Production (t)"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, 0, len(d.Efficiency))
	for _, r := range d.Efficiency {
		pts = append(pts, plotter.XY{X: r.SownHa, Y: r.ProductionT})
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(4)

	p.Add(scatter)
	return p.Save(9*vg.Inch, 6*vg.Inch, path)
}

func yieldBoxChart(path string, d *model.Dashboard) error {
	p := plot.New()
	p.Title.Text = "Yield Distribution, Leading Departments"
	p.Y.Label.Text = "Yield (t/ha)"

	names := make([]string, 0, len(d.YieldByDepartment))
	for i, b := range d.YieldByDepartment {
		// The box plotter derives quantiles from the values it is
		// given, so the five summary numbers reproduce the summary.
		vals := plotter.Values{b.Min, b.Q1, b.Median, b.Q3, b.Max}
		box, err := plotter.NewBoxPlot(vg.Points(24), float64(i), vals)
		if err != nil {
			return err
		}
		p.Add(box)
		names = append(names, b.Key)
	}
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = 0.9
	p.X.Tick.Label.XAlign = -0.8

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

func lorenzChart(path string, d *model.Dashboard) error {
	p := plot.New()
	p.Title.Text = "Production Concentration across Municipalities"
	p.X.Label.Text = "Municipalities (%)"
	p.Y.Label.Text = "Cumulative production (%)"
	p.Add(plotter.NewGrid())

	curve := make(plotter.XYs, len(d.Lorenz))
	for i, pt := range d.Lorenz {
		curve[i].X = pt.GroupPct
		curve[i].Y = pt.CumulativePct
	}

	curveLine, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	curveLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	curveLine.Width = vg.Points(2)

	diagonal, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 100, Y: 100}})
	if err != nil {
		return err
	}
	diagonal.Color = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	diagonal.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}

	p.Add(curveLine, diagonal)
	p.Legend.Add("Observed", curveLine)
	p.Legend.Add("Perfect equality", diagonal)
	p.Legend.Top = true
	p.Legend.Left = true

	return p.Save(8*vg.Inch, 8*vg.Inch, path)
}
