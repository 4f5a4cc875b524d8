package model

// SummaryRow is one group of a single-key aggregation.
type SummaryRow struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// YearPoint is one step of the yearly trend series.
type YearPoint struct {
	Year        int     `json:"year"`
	SownHa      float64 `json:"sown_ha"`
	HarvestedHa float64 `json:"harvested_ha"`
	ProductionT float64 `json:"production_t"`
	MeanYield   float64 `json:"mean_yield_t_ha"`
}

// MunicipalityRow is one entry of the municipality production table.
type MunicipalityRow struct {
	Department   string  `json:"department"`
	Municipality string  `json:"municipality"`
	ProductionT  float64 `json:"production_t"`
	SownHa       float64 `json:"sown_ha"`
	MeanYield    float64 `json:"mean_yield_t_ha"`
}

// EfficiencyRow relates sown to harvested area for one department.
// Efficiency is harvested/sown as a percentage and is reported as
// computed, even above 100 when the source declares more harvested
// than sown area.
type EfficiencyRow struct {
	Department  string  `json:"department"`
	SownHa      float64 `json:"sown_ha"`
	HarvestedHa float64 `json:"harvested_ha"`
	ProductionT float64 `json:"production_t"`
	LossHa      float64 `json:"loss_ha"`
	Efficiency  float64 `json:"efficiency_pct"`
}

// LorenzPoint is one vertex of the Lorenz curve. Both coordinates
// are percentages in [0, 100]; the first point is always the origin.
type LorenzPoint struct {
	GroupPct      float64 `json:"group_pct"`
	CumulativePct float64 `json:"cumulative_pct"`
}

// CorrelationMatrix holds pairwise Pearson coefficients for the
// numeric survey fields, computed over complete cases only.
type CorrelationMatrix struct {
	Fields []string    `json:"fields"`
	Values [][]float64 `json:"values"`
	Rows   int         `json:"rows"`
}

// CrossTab is the year-by-period production pivot. Cells[i][j] is the
// total for Years[i] and Periods[j]; nil marks a combination absent
// from the data.
type CrossTab struct {
	Years   []int        `json:"years"`
	Periods []string     `json:"periods"`
	Cells   [][]*float64 `json:"cells"`
}

// BoxStats is the five-number summary of one group's yield values.
type BoxStats struct {
	Key    string  `json:"key"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// HistogramBin is one equal-width bucket of a distribution.
type HistogramBin struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// Comparison contrasts the strongest and weakest producers.
type Comparison struct {
	Top        []SummaryRow `json:"top"`
	Bottom     []SummaryRow `json:"bottom"`
	TopMean    float64      `json:"top_mean"`
	BottomMean float64      `json:"bottom_mean"`
}

// Metrics are the headline figures shown above the charts.
type Metrics struct {
	Records            int     `json:"records"`
	Departments        int     `json:"departments"`
	Municipalities     int     `json:"municipalities"`
	YearMin            int     `json:"year_min"`
	YearMax            int     `json:"year_max"`
	TotalSownHa        float64 `json:"total_sown_ha"`
	TotalHarvestedHa   float64 `json:"total_harvested_ha"`
	TotalProductionT   float64 `json:"total_production_t"`
	MeanYieldTHa       float64 `json:"mean_yield_t_ha"`
	NationalEfficiency float64 `json:"national_efficiency_pct"`
	LeadingDepartment  string  `json:"leading_department"`
	LeadingMunicipio   string  `json:"leading_municipality"`
}

// Dashboard bundles every figure and table computed for one filtered
// slice of the survey.
type Dashboard struct {
	Metrics            Metrics           `json:"metrics"`
	YearSeries         []YearPoint       `json:"year_series"`
	DepartmentRanking  []SummaryRow      `json:"department_ranking"`
	DepartmentYield    []SummaryRow      `json:"department_yield"`
	TopMunicipalities  []MunicipalityRow `json:"top_municipalities"`
	Top5DepartmentPct  float64           `json:"top5_department_pct"`
	Top10MunicipioPct  float64           `json:"top10_municipality_pct"`
	Efficiency         []EfficiencyRow   `json:"efficiency"`
	SystemProduction   []SummaryRow      `json:"system_production"`
	SystemYield        []SummaryRow      `json:"system_yield"`
	PeriodShare        []SummaryRow      `json:"period_share"`
	YearPeriod         CrossTab          `json:"year_period"`
	Correlation        CorrelationMatrix `json:"correlation"`
	YieldByDepartment  []BoxStats        `json:"yield_by_department"`
	YieldHistogram     []HistogramBin    `json:"yield_histogram"`
	MunicipioHistogram []HistogramBin    `json:"municipality_histogram"`
	TopBottom          Comparison        `json:"top_bottom"`
	Lorenz             []LorenzPoint     `json:"lorenz"`
}
