package filter

import (
	"sort"

	"eva-analytics/internal/model"
)

// Apply narrows v to the rows matching every active dimension of sel.
// Dimensions left at their zero value impose no restriction. When the
// combination matches nothing, an EmptyResultError is returned so the
// caller can short-circuit before computing anything.
func Apply(v model.View, sel model.Selection) (model.View, error) {
	var deptSet map[string]bool
	if len(sel.Departments) > 0 {
		deptSet = make(map[string]bool, len(sel.Departments))
		for _, d := range sel.Departments {
			deptSet[d] = true
		}
	}

	out := v.Where(func(r model.Record) bool {
		if deptSet != nil && !deptSet[r.Department] {
			return false
		}
		if sel.Year != nil && r.Year != *sel.Year {
			return false
		}
		if sel.Department != "" && r.Department != sel.Department {
			return false
		}
		if sel.Municipality != "" && r.Municipality != sel.Municipality {
			return false
		}
		return true
	})
	if out.Len() == 0 {
		return model.View{}, &model.EmptyResultError{Selection: sel}
	}
	return out, nil
}

// Normalize repairs a selection against cascades: a municipality that
// does not belong to the selected detail department is cleared, so a
// department change never leaves a stale municipality behind.
func Normalize(v model.View, sel model.Selection) model.Selection {
	if sel.Municipality == "" || sel.Department == "" {
		return sel
	}
	for _, m := range Municipalities(v, sel.Department) {
		if m == sel.Municipality {
			return sel
		}
	}
	sel.Municipality = ""
	return sel
}

// Options collects the values the filter panel offers for the loaded
// data: departments and municipalities sorted alphabetically, years
// newest first.
func Options(v model.View) model.FilterOptions {
	depts := make(map[string]bool)
	years := make(map[int]bool)
	munis := make(map[string]bool)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		depts[r.Department] = true
		years[r.Year] = true
		munis[r.Municipality] = true
	}
	opts := model.FilterOptions{
		Departments:    sortedKeys(depts),
		Municipalities: sortedKeys(munis),
	}
	for y := range years {
		opts.Years = append(opts.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(opts.Years)))
	return opts
}

// Municipalities lists the municipalities of one department, sorted
// alphabetically. An empty department lists every municipality.
func Municipalities(v model.View, department string) []string {
	munis := make(map[string]bool)
	for i := 0; i < v.Len(); i++ {
		r := v.At(i)
		if department == "" || r.Department == department {
			munis[r.Municipality] = true
		}
	}
	return sortedKeys(munis)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
