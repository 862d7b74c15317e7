package combat

import (
	"math"

	"dmgsim/internal/config"
)

// FinalAtk is the attack power every skill hit scales from.
func FinalAtk(cfg config.Config, strength float64) float64 {
	return cfg.Get(config.PAtk) * strength *
		(1 + cfg.Get(config.PAtkPct)/100) *
		(1 + cfg.Get(config.PGlobalAtkPct)/100) *
		(1 + cfg.Get(config.FinalDmgPct)/100)
}

// ExpectedCritMultiplier folds crit chance and crit damage into the average
// multiplier of one hit. DoT ticks never crit.
func ExpectedCritMultiplier(cfg config.Config, skill string) float64 {
	chance := cfg.Get(config.CritChancePct)
	switch skill {
	case SkillBasicAttack:
		chance += cfg.Get(config.BasicCritChancePct) + cfg.Get(config.WeaponCritChancePct)
	case SkillComboAttack, SkillRage, SkillCounter:
		chance += cfg.Get(config.WeaponCritChancePct)
	case SkillBurnDot, SkillPoisonDot:
		return 1.0
	default:
		chance += cfg.Get(config.SkillCritChancePct)
	}
	if chance > 100 {
		chance = 100
	}
	// A NaN chance counts as no crit. config.Validate rejects it before a run.
	if chance < 0 || math.IsNaN(chance) {
		chance = 0
	}
	p := chance / 100
	return (1 - p) + p*(1+cfg.Get(config.CritDmgPct)/100)
}

// resolved holds every multiplier of one skill lookup.
type resolved struct {
	bonusCoef  float64
	localMult  float64
	globalMult float64
	finalMult  float64
	critMult   float64
}

func resolve(def SkillDef, skill string, cfg config.Config, extraMods []string) resolved {
	local := def.LocalMods
	global := def.GlobalMods
	for _, m := range extraMods {
		local = appendMissing(local, m)
		global = appendMissing(global, config.GlobalPrefix+m)
	}

	r := resolved{
		localMult:  1 + sumKeys(cfg, local)/100,
		globalMult: 1 + sumKeys(cfg, global)/100,
		finalMult:  1,
		critMult:   ExpectedCritMultiplier(cfg, skill),
	}
	r.bonusCoef = sumKeys(cfg, def.BonusKeys)
	if def.FinalBonus != "" {
		r.finalMult = 1 + cfg.Get(def.FinalBonus)/100
	}
	return r
}

// Damage returns the damage of a single use of skill at baseCoef. extraMods
// adds modifier keys to the local list for this call only, and their Global_
// counterparts to the global list. Unknown skills resolve with no modifiers
// and no bonus.
func Damage(skill string, cfg config.Config, finalAtk, baseCoef float64, extraMods ...string) float64 {
	def, _ := Lookup(skill)
	r := resolve(def, skill, cfg, extraMods)
	return finalAtk *
		(baseCoef + r.bonusCoef) *
		r.localMult *
		r.globalMult *
		r.finalMult *
		r.critMult
}

// ComputeBreakdown resolves skill at its catalog coefficient. It reports
// false for unknown skills and for skills whose usage count is 0.
func ComputeBreakdown(skill string, cfg config.Config, finalAtk float64) (Breakdown, bool) {
	def, ok := Lookup(skill)
	if !ok {
		return Breakdown{}, false
	}
	return breakdownFor(def, cfg, finalAtk, def.BaseCoef())
}

// ComputeBreakdownCoef is ComputeBreakdown with a caller-supplied base
// coefficient.
func ComputeBreakdownCoef(skill string, cfg config.Config, finalAtk, baseCoef float64) (Breakdown, bool) {
	def, ok := Lookup(skill)
	if !ok {
		return Breakdown{}, false
	}
	return breakdownFor(def, cfg, finalAtk, baseCoef)
}

func breakdownFor(def SkillDef, cfg config.Config, finalAtk, baseCoef float64) (Breakdown, bool) {
	count := cfg.Get(def.UsageKey())
	if count == 0 {
		return Breakdown{}, false
	}
	r := resolve(def, def.ID, cfg, nil)
	return NewBreakdown(BreakdownParams{
		Skill:      def.ID,
		Count:      count,
		BaseCoef:   baseCoef,
		BonusCoef:  r.bonusCoef,
		FinalAtk:   finalAtk,
		LocalMult:  r.localMult,
		GlobalMult: r.globalMult,
		FinalMult:  r.finalMult,
		CritMult:   r.critMult,
	}), true
}

func sumKeys(cfg config.Config, keys []string) float64 {
	total := 0.0
	for _, k := range keys {
		total += cfg.Get(k)
	}
	return total
}

func appendMissing(list []string, key string) []string {
	for _, k := range list {
		if k == key {
			return list
		}
	}
	out := make([]string, len(list), len(list)+1)
	copy(out, list)
	return append(out, key)
}
