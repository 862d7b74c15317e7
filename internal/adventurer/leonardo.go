package adventurer

import (
	"math"

	"dmgsim/internal/combat"
	"dmgsim/internal/config"
)

const (
	skillSBS = "sbs"
	skillHSD = "hsd"
	skillWTS = "wts"
)

var leoSequence = []float64{0.3, 0.7, 1.0}

// 70% per attempt, three attempts.
var leoExtraNinjutsuChance = 1 - math.Pow(1-0.7, 3)

// Leonardo chains a fixed basic-attack sequence into ninjutsu casts. hsd runs
// on a cooldown; wts replaces rage from level 8.
type Leonardo struct{}

func (Leonardo) ID() ID        { return LeonardoID }
func (Leonardo) Levels() []int { return []int{0, 2, 4, 5, 7, 8, 10} }
func (Leonardo) Rounds() int   { return 10 }

func (Leonardo) ApplyPassives(base config.Config, level int) config.Config {
	cfg := base.Clone()
	cfg[config.PStrength] = 1.10
	if level >= 5 {
		cfg.Add(config.NinjutsuDmgPct, 100)
		cfg.Add(config.FireDmgPct, 100)
		cfg.Add(config.LightningDmgPct, 100)
		cfg.Add(config.PhysicalDmgPct, 100)
	}
	if level >= 10 {
		cfg.Add(config.GlobalFireDmgPct, 60)
		cfg.Add(config.GlobalLightningDmgPct, 60)
		cfg.Add(config.GlobalPhysicalDmgPct, 60)
	}
	return cfg
}

// hsdCooldown is the number of rounds between hsd casts.
func hsdCooldown(level int) int {
	if level >= 7 {
		return 2
	}
	return 3
}

type leoSBS struct {
	total float64
	coef  float64
	count float64
}

func leoSequenceDamage(level int, cfg config.Config, finalAtk float64) leoSBS {
	var out leoSBS
	for _, c := range leoSequence {
		out.total += combat.Damage(combat.SkillBasicAttack, cfg, finalAtk, c)
		out.coef += c
	}

	ninjutsu := combat.Damage(combat.SkillNinjutsu, cfg, finalAtk, 1.0)
	out.total += ninjutsu
	out.coef += 1.0
	if level >= 2 {
		out.total += leoExtraNinjutsuChance * ninjutsu
		out.coef += leoExtraNinjutsuChance
	}

	out.count = cfg.GetOr(config.NumBasicAttacks, 1) * cfg.GetOr(config.NumCombos, 1)
	out.total *= out.count
	return out
}

func leoHSD(level int, cfg config.Config, finalAtk, targetHP float64) float64 {
	if level < 4 {
		return 0
	}
	coef := 2.0
	if level >= 7 {
		coef = 4
	}
	dmg := 5 * combat.Damage(combat.SkillNinjutsu, cfg, finalAtk, coef)
	if level >= 7 {
		dmg += 5 * cappedHP(0.02, targetHP, 20, finalAtk)
	}
	return dmg
}

func leoWTSCoef(level int) float64 {
	if level >= 10 {
		return 5
	}
	return 3
}

func (l Leonardo) Damage(level int, base config.Config, targetHP float64) Result {
	cfg := l.ApplyPassives(base, level)
	strength := cfg.GetOr(config.PStrength, 1.10)
	finalAtk := combat.FinalAtk(cfg, strength)
	rageStrikes := cfg.GetOr(config.NumRageStrikes, 1)

	sbs := leoSequenceDamage(level, cfg, finalAtk)
	hsd := leoHSD(level, cfg, finalAtk, targetHP)

	// wts and rage never fire in the same round: wts takes over at level 8.
	var wts, rage float64
	if level >= 8 {
		wts = 3 * combat.Damage(combat.SkillNinjutsu, cfg, finalAtk, leoWTSCoef(level)) * rageStrikes
	} else {
		rage = combat.Damage(combat.SkillRage, cfg, finalAtk, cfg.Get(config.RageAtkCoef)) * rageStrikes
	}

	shared := combat.ComputeAll(cfg, strength)
	bd := shared.Breakdowns
	delete(bd, combat.SkillBasicAttack)
	delete(bd, combat.SkillComboAttack)

	bd[skillSBS] = explicitBreakdown(cfg, skillSBS, sbs.count, sbs.coef, finalAtk, sbs.total)
	if level >= 4 {
		bd[skillHSD] = explicitBreakdown(cfg, skillHSD, 1, 10, finalAtk, hsd)
	}
	if level >= 8 {
		delete(bd, combat.SkillRage)
		bd[skillWTS] = explicitBreakdown(cfg, skillWTS, rageStrikes, 3, finalAtk, wts)
	} else {
		bd[combat.SkillRage] = explicitBreakdown(cfg, combat.SkillRage, rageStrikes, cfg.Get(config.RageAtkCoef), finalAtk, rage)
	}

	res := newResult(l.ID(), level, bd)
	res.Damage[skillSBS] = sbs.total
	res.Damage[skillHSD] = hsd
	res.Damage[skillWTS] = wts
	res.Damage[combat.SkillRage] = rage
	res.Damage[combat.SkillBasicAttack] = 0
	res.Damage[combat.SkillComboAttack] = 0
	res.Cooldown = hsdCooldown(level)
	res.merge(shared.Damage)
	res.finish()
	return res
}

// Accumulate repeats the sequence Num_Combos times per round plus wts/rage;
// hsd lands on rounds that are a multiple of its cooldown.
func (l Leonardo) Accumulate(cfg config.Config, res Result) []RoundRecord {
	combos := cfg.GetOr(config.NumCombos, 1)
	cd := res.Cooldown
	if cd <= 0 {
		cd = hsdCooldown(res.Level)
	}
	steady := res.Damage[skillSBS]*combos + res.Damage[skillWTS] + res.Damage[combat.SkillRage]
	hsd := res.Damage[skillHSD]
	return accumulate(res, l.Rounds(), func(rnd int) float64 {
		dmg := steady
		if rnd%cd == 0 {
			dmg += hsd
		}
		return dmg
	})
}

func (l Leonardo) Diagnose(base config.Config, level int) Diagnostic {
	return diagnose(l.ID(), l.ApplyPassives(base, level), level,
		config.PStrength,
		config.NinjutsuDmgPct,
		config.RageAtkCoef,
		config.GlobalDmgPct,
		config.GlobalSkillDmgPct,
	)
}
