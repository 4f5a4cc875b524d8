package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"eva-analytics/internal/model"
)

// WriteMarkdown renders the dashboard as a human-readable report and
// returns the file name.
func WriteMarkdown(dir, title string, d *model.Dashboard, charts []string) (string, error) {
	var b strings.Builder
	m := d.Metrics

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().Format("2006-01-02 15:04"))

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- Records: %d (years %d-%d)\n", m.Records, m.YearMin, m.YearMax)
	fmt.Fprintf(&b, "- Departments: %d, municipalities: %d\n", m.Departments, m.Municipalities)
	fmt.Fprintf(&b, "- Total production: %.1f t on %.1f ha sown\n", m.TotalProductionT, m.TotalSownHa)
	fmt.Fprintf(&b, "- Mean yield: %.2f t/ha, national efficiency: %.1f%%\n", m.MeanYieldTHa, m.NationalEfficiency)
	fmt.Fprintf(&b, "- Leading department: %s, leading municipality: %s\n\n", m.LeadingDepartment, m.LeadingMunicipio)

	b.WriteString("## Concentration\n\n")
	fmt.Fprintf(&b, "- Top 5 departments hold %.1f%% of production\n", d.Top5DepartmentPct)
	fmt.Fprintf(&b, "- Top 10 municipalities hold %.1f%% of production\n\n", d.Top10MunicipioPct)

	b.WriteString("## Department ranking\n\n")
	b.WriteString("| # | Department | Production (t) | Records |\n")
	b.WriteString("|---|-----------|----------------|---------|\n")
	for i, r := range d.DepartmentRanking {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "| %d | %s | %.1f | %d |\n", i+1, r.Key, r.Value, r.Count)
	}
	b.WriteString("\n")

	b.WriteString("## Top municipalities\n\n")
	b.WriteString("| # | Municipality | Department | Production (t) | Mean yield (t/ha) |\n")
	b.WriteString("|---|--------------|-----------|----------------|-------------------|\n")
	for i, r := range d.TopMunicipalities {
		fmt.Fprintf(&b, "| %d | %s | %s | %.1f | %.2f |\n", i+1, r.Municipality, r.Department, r.ProductionT, r.MeanYield)
	}
	b.WriteString("\n")

	b.WriteString("## Harvest efficiency\n\n")
	b.WriteString("| Department | Sown (ha) | Harvested (ha) | Loss (ha) | Efficiency (%) |\n")
	b.WriteString("|-----------|-----------|----------------|-----------|----------------|\n")
	for i, r := range d.Efficiency {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "| %s | %.1f | %.1f | %.1f | %.1f |\n", r.Department, r.SownHa, r.HarvestedHa, r.LossHa, r.Efficiency)
	}
	b.WriteString("\n")

	if len(charts) > 0 {
		b.WriteString("## Charts\n\n")
		for _, c := range charts {
			fmt.Fprintf(&b, "![%s](%s)\n\n", strings.TrimSuffix(c, filepath.Ext(c)), c)
		}
	}

	name := "report.md"
	if err := os.WriteFile(filepath.Join(dir, name), []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return name, nil
}
