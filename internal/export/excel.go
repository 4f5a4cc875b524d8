package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"eva-analytics/internal/model"
)

// WriteWorkbook saves the dashboard tables as a multi-sheet Excel
// workbook at path.
func WriteWorkbook(path string, d *model.Dashboard) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeOverview(f, d); err != nil {
		return err
	}
	if err := writeSummarySheet(f, "Departments", []string{"Department", "Production (t)", "Records"}, d.DepartmentRanking); err != nil {
		return err
	}
	if err := writeYearly(f, d.YearSeries); err != nil {
		return err
	}
	if err := writeEfficiency(f, d.Efficiency); err != nil {
		return err
	}
	if err := writeSummarySheet(f, "Systems", []string{"System", "Production (t)", "Records"}, d.SystemProduction); err != nil {
		return err
	}
	if err := writeCorrelation(f, d.Correlation); err != nil {
		return err
	}
	if err := writeLorenz(f, d.Lorenz); err != nil {
		return err
	}

	f.DeleteSheet("Sheet1")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func newSheet(f *excelize.File, name string) error {
	_, err := f.NewSheet(name)
	return err
}

func writeOverview(f *excelize.File, d *model.Dashboard) error {
	sheet := "Overview"
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	m := d.Metrics
	lines := [][]interface{}{
		{"Metric", "Value"},
		{"Records", m.Records},
		{"Departments", m.Departments},
		{"Municipalities", m.Municipalities},
		{"Year range", fmt.Sprintf("%d-%d", m.YearMin, m.YearMax)},
		{"Total sown (ha)", m.TotalSownHa},
		{"Total harvested (ha)", m.TotalHarvestedHa},
		{"Total production (t)", m.TotalProductionT},
		{"Mean yield (t/ha)", m.MeanYieldTHa},
		{"National efficiency (%)", m.NationalEfficiency},
		{"Leading department", m.LeadingDepartment},
		{"Leading municipality", m.LeadingMunicipio},
		{"Top 5 departments hold (%)", d.Top5DepartmentPct},
		{"Top 10 municipalities hold (%)", d.Top10MunicipioPct},
	}
	for i, line := range lines {
		if err := setRow(f, sheet, i+1, line); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, sheet string, header []string, rows []model.SummaryRow) error {
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	head := make([]interface{}, len(header))
	for i, h := range header {
		head[i] = h
	}
	if err := setRow(f, sheet, 1, head); err != nil {
		return err
	}
	for i, r := range rows {
		if err := setRow(f, sheet, i+2, []interface{}{r.Key, r.Value, r.Count}); err != nil {
			return err
		}
	}
	return nil
}

func writeYearly(f *excelize.File, points []model.YearPoint) error {
	sheet := "Yearly"
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	header := []interface{}{"Year", "Sown (ha)", "Harvested (ha)", "Production (t)", "Mean yield (t/ha)"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, p := range points {
		row := []interface{}{p.Year, p.SownHa, p.HarvestedHa, p.ProductionT, p.MeanYield}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeEfficiency(f *excelize.File, rows []model.EfficiencyRow) error {
	sheet := "Efficiency"
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	header := []interface{}{"Department", "Sown (ha)", "Harvested (ha)", "Production (t)", "Loss (ha)", "Efficiency (%)"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, r := range rows {
		row := []interface{}{r.Department, r.SownHa, r.HarvestedHa, r.ProductionT, r.LossHa, r.Efficiency}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCorrelation(f *excelize.File, m model.CorrelationMatrix) error {
	sheet := "Correlation"
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	header := make([]interface{}, len(m.Fields)+1)
	header[0] = fmt.Sprintf("Pearson (n=%d)", m.Rows)
	for i, field := range m.Fields {
		header[i+1] = field
	}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	for i, field := range m.Fields {
		row := make([]interface{}, len(m.Fields)+1)
		row[0] = field
		for j, val := range m.Values[i] {
			row[j+1] = val
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeLorenz(f *excelize.File, points []model.LorenzPoint) error {
	sheet := "Lorenz"
	if err := newSheet(f, sheet); err != nil {
		return err
	}
	if err := setRow(f, sheet, 1, []interface{}{"Group %", "Cumulative production %"}); err != nil {
		return err
	}
	for i, p := range points {
		if err := setRow(f, sheet, i+2, []interface{}{p.GroupPct, p.CumulativePct}); err != nil {
			return err
		}
	}
	return nil
}
