package adventurer

import (
	"dmgsim/internal/combat"
	"dmgsim/internal/config"
)

const (
	skillMissiles = "missiles"
	skillBomb     = "bomb"

	gagarinDaggerCoef = 0.45
)

// Gagarin throws daggers that may turn into missiles and drops a bomb on odd
// rounds once unlocked.
type Gagarin struct{}

func (Gagarin) ID() ID        { return GagarinID }
func (Gagarin) Levels() []int { return []int{0, 2, 4, 5, 7, 10} }
func (Gagarin) Rounds() int   { return 10 }

func (Gagarin) ApplyPassives(base config.Config, level int) config.Config {
	cfg := base.Clone()
	cfg[config.PStrength] = 1.20
	if level >= 10 {
		cfg.Add(config.GlobalSkillDmgPct, 30)
		cfg.Add(config.GlobalDaggerDmgPct, 30)
	}
	return cfg
}

func missileChance(level int) float64 {
	if level >= 5 {
		return 0.65
	}
	return 0.50
}

func missileCoef(level int) float64 {
	if level >= 2 {
		return 1.00
	}
	return 0.80
}

func (g Gagarin) Damage(level int, base config.Config, targetHP float64) Result {
	cfg := g.ApplyPassives(base, level)
	strength := cfg.Get(config.PStrength)
	finalAtk := combat.FinalAtk(cfg, strength)
	shared := combat.ComputeAll(cfg, strength)

	daggers := cfg.Get(config.NumDaggers)
	chance := missileChance(level)
	mCoef := missileCoef(level)
	daggerHits := (1 - chance) * daggers
	missileHits := chance * daggers

	dagger := combat.Damage(combat.SkillDagger, cfg, finalAtk, gagarinDaggerCoef) * daggerHits
	missiles := combat.Damage(combat.SkillDagger, cfg, finalAtk, mCoef) * missileHits

	// The split replaces the single aggregate dagger entry.
	if orig, ok := shared.Breakdowns[combat.SkillDagger]; ok {
		shared.Breakdowns[combat.SkillDagger] = splitHit(orig, combat.SkillDagger, daggerHits, gagarinDaggerCoef)
		shared.Breakdowns[skillMissiles] = splitHit(orig, skillMissiles, missileHits, mCoef)
	}

	var bomb, bombCoef float64
	switch {
	case level >= 7:
		bombCoef = 18
		bomb = combat.Damage(combat.SkillDagger, cfg, finalAtk, bombCoef) + cappedHP(0.10, targetHP, 100, finalAtk)
	case level >= 4:
		bombCoef = 9
		bomb = combat.Damage(combat.SkillDagger, cfg, finalAtk, bombCoef)
	}
	if bomb > 0 {
		shared.Breakdowns[skillBomb] = explicitBreakdown(cfg, skillBomb, 1, bombCoef, finalAtk, bomb)
	}

	res := newResult(g.ID(), level, shared.Breakdowns)
	res.Damage[combat.SkillDagger] = dagger
	res.Damage[skillMissiles] = missiles
	res.Damage[skillBomb] = bomb
	res.Damage[combat.SkillRage] = shared.Damage[combat.SkillRage]
	res.merge(shared.Damage)
	res.finish()
	return res
}

// splitHit re-derives a dagger breakdown for a share of the hits at a
// different base coefficient, keeping the resolved multipliers.
func splitHit(orig combat.Breakdown, skill string, hits, coef float64) combat.Breakdown {
	return combat.NewBreakdown(combat.BreakdownParams{
		Skill:      skill,
		Count:      hits,
		BaseCoef:   coef,
		BonusCoef:  orig.BonusCoef,
		FinalAtk:   orig.FinalAtk,
		LocalMult:  orig.LocalMult,
		GlobalMult: orig.GlobalMult,
		FinalMult:  orig.FinalMult,
		CritMult:   orig.CritMult,
	})
}

// Accumulate adds everything but the bomb each round; the bomb lands on odd
// rounds from round 3.
func (g Gagarin) Accumulate(_ config.Config, res Result) []RoundRecord {
	steady := res.sumExcept(skillBomb)
	bomb := res.Damage[skillBomb]
	return accumulate(res, g.Rounds(), func(rnd int) float64 {
		dmg := steady
		if rnd >= 3 && oddRound(rnd) {
			dmg += bomb
		}
		return dmg
	})
}

func (g Gagarin) Diagnose(base config.Config, level int) Diagnostic {
	return diagnose(g.ID(), g.ApplyPassives(base, level), level,
		config.PStrength,
		config.GlobalSkillDmgPct,
		config.GlobalDaggerDmgPct,
		config.BonusDaggerCoef,
		config.NumDaggers,
		config.RageAtkCoef,
		config.GlobalDmgPct,
		config.DaggerDmgPct,
		config.NumLightSpears,
	)
}
