package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"eva-analytics/internal/analysis"
	"eva-analytics/internal/dataset"
	"eva-analytics/internal/export"
	"eva-analytics/internal/filter"
	"eva-analytics/internal/model"
	"eva-analytics/internal/report"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	godotenv.Load()

	source := flag.String("source", env("EVA_SOURCE_URL", "data/evaluaciones_agropecuarias.csv"), "survey CSV path or URL")
	crop := flag.String("crop", env("EVA_CROP", ""), "narrow the cereal group to one crop, e.g. arroz")
	departments := flag.String("departments", "", "comma-separated department multi-select")
	year := flag.Int("year", 0, "restrict to one calendar year")
	department := flag.String("department", "", "detail department")
	municipality := flag.String("municipality", "", "detail municipality")
	outDir := flag.String("out", env("EVA_OUTPUT_DIR", "reports"), "output directory")
	flag.Parse()

	scope := dataset.ScopeCereals
	if strings.EqualFold(*crop, "arroz") {
		scope = dataset.ScopeRice
	}

	var sel model.Selection
	if *departments != "" {
		for _, d := range strings.Split(*departments, ",") {
			if d = strings.TrimSpace(d); d != "" {
				sel.Departments = append(sel.Departments, d)
			}
		}
	}
	if *year != 0 {
		sel.Year = year
	}
	sel.Department = *department
	sel.Municipality = *municipality

	if err := run(*source, scope, sel, *outDir); err != nil {
		log.Fatalf("❌ Report failed: %v", err)
	}
}

func run(source string, scope dataset.CropScope, sel model.Selection, outDir string) error {
	ds, err := dataset.NewLoader().Load(context.Background(), source, scope)
	if err != nil {
		return err
	}

	sel = filter.Normalize(ds.View(), sel)
	v, err := filter.Apply(ds.View(), sel)
	if err != nil {
		return err
	}
	fmt.Printf("🔎 Selection matches %d of %d records (%s)\n", v.Len(), ds.Len(), sel.Describe())

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	fmt.Println("📊 Computing dashboard figures...")
	dash := analysis.ComputeDashboard(v)

	prefix := strings.ToLower(scope.Group)
	if scope.Crop != "" {
		prefix = strings.ToLower(scope.Crop)
	}
	_, csvName, err := export.WriteCSVFile(outDir, prefix, v)
	if err != nil {
		return err
	}
	fmt.Printf("💾 Wrote %s\n", csvName)

	xlsxPath := filepath.Join(outDir, "dashboard.xlsx")
	if err := export.WriteWorkbook(xlsxPath, dash); err != nil {
		return err
	}
	fmt.Printf("💾 Wrote %s\n", filepath.Base(xlsxPath))

	fmt.Println("🎨 Rendering charts...")
	charts, err := report.RenderCharts(outDir, dash)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Agricultural Survey Report: %s", scope)
	mdName, err := report.WriteMarkdown(outDir, title, dash, charts)
	if err != nil {
		return err
	}
	fmt.Printf("✅ Report complete: %s\n", filepath.Join(outDir, mdName))
	return nil
}
