package sim

import (
	"sort"

	"dmgsim/internal/adventurer"
)

const totalColumn = "total"

// ComparisonRow is one damage type at one level, scenario A against B.
type ComparisonRow struct {
	Level      int     `json:"level" yaml:"level"`
	DamageType string  `json:"damage_type" yaml:"damage_type"`
	Scenario1  float64 `json:"scenario_1" yaml:"scenario_1"`
	Scenario2  float64 `json:"scenario_2" yaml:"scenario_2"`
	// PercentChange and Relative are nil when the scenario A value is 0.
	PercentChange *float64 `json:"percent_change" yaml:"percent_change"`
	Relative      *float64 `json:"relative" yaml:"relative"`
}

// Compare pairs the two scenarios of one adventurer by level. Levels present
// in only one scenario are skipped.
func Compare(t Tables, id adventurer.ID) []ComparisonRow {
	byLevel := map[int][2]*adventurer.Result{}
	var levels []int
	for i := range t.Skills {
		r := &t.Skills[i]
		if r.Adventurer != id {
			continue
		}
		pair, seen := byLevel[r.Level]
		if !seen {
			levels = append(levels, r.Level)
		}
		switch r.Scenario {
		case LabelA:
			pair[0] = r
		case LabelB:
			pair[1] = r
		}
		byLevel[r.Level] = pair
	}
	sort.Ints(levels)

	var rows []ComparisonRow
	for _, lvl := range levels {
		pair := byLevel[lvl]
		if pair[0] == nil || pair[1] == nil {
			continue
		}
		for _, dt := range damageTypes(*pair[0], *pair[1]) {
			rows = append(rows, compareValue(lvl, dt, value(*pair[0], dt), value(*pair[1], dt)))
		}
	}
	return rows
}

func damageTypes(a, b adventurer.Result) []string {
	set := map[string]bool{}
	for k := range a.Damage {
		set[k] = true
	}
	for k := range b.Damage {
		set[k] = true
	}
	out := make([]string, 0, len(set)+1)
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return append(out, totalColumn)
}

func value(r adventurer.Result, dt string) float64 {
	if dt == totalColumn {
		return r.Total
	}
	return r.Damage[dt]
}

func compareValue(level int, dt string, v1, v2 float64) ComparisonRow {
	row := ComparisonRow{Level: level, DamageType: dt, Scenario1: v1, Scenario2: v2}
	if v1 != 0 {
		pct := 100 * (v2 - v1) / v1
		rel := v2 / v1
		row.PercentChange = &pct
		row.Relative = &rel
	}
	return row
}
