package combat

import "dmgsim/internal/config"

// SkillTotals is the aggregate output: per-skill damage and the matching
// breakdowns, keyed by skill ID.
type SkillTotals struct {
	Damage     map[string]float64
	Breakdowns map[string]Breakdown
}

// ComputeAll runs every catalog skill with a non-zero usage count. Rage takes
// its base coefficient from Rage_ATK_coef instead of the catalog.
func ComputeAll(cfg config.Config, strength float64) SkillTotals {
	finalAtk := FinalAtk(cfg, strength)
	out := SkillTotals{
		Damage:     map[string]float64{},
		Breakdowns: map[string]Breakdown{},
	}
	for _, def := range catalog.Skills() {
		if cfg.Get(def.UsageKey()) == 0 {
			continue
		}
		var (
			b  Breakdown
			ok bool
		)
		if def.ID == SkillRage {
			b, ok = breakdownFor(def, cfg, finalAtk, cfg.Get(config.RageAtkCoef))
		} else {
			b, ok = breakdownFor(def, cfg, finalAtk, def.BaseCoef())
		}
		if !ok {
			continue
		}
		out.Damage[def.ID] = b.Total
		out.Breakdowns[def.ID] = b
	}
	return out
}
