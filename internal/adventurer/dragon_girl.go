package adventurer

import (
	"dmgsim/internal/combat"
	"dmgsim/internal/config"
)

const (
	skillBreath       = "breath"
	skillCatastrophic = "catastrophic"
	skillDragonWrath  = "dragon_wrath"
)

// DragonGirl adds a flame breath to every basic, combo and rage strike.
type DragonGirl struct{}

func (DragonGirl) ID() ID        { return DragonGirlID }
func (DragonGirl) Levels() []int { return []int{0, 2, 4, 5, 7, 8, 10} }
func (DragonGirl) Rounds() int   { return 15 }

func (DragonGirl) ApplyPassives(base config.Config, level int) config.Config {
	cfg := base.Clone()
	cfg[config.PStrength] = 1.15
	if level >= 4 {
		cfg.Add(config.GlobalDragonFlameDmgPct, 30)
	}
	if level >= 5 {
		cfg.Add(config.GlobalDragonFlameDmgPct, 100)
	}
	if level >= 7 {
		cfg.Add(config.GlobalDragonFlameDmgPct, 30)
	}
	if level >= 8 {
		cfg.Add(config.FinalDmgPct, 30)
	}
	return cfg
}

func breathCoef(level int) float64 {
	if level >= 2 {
		return 1.8
	}
	return 0.9
}

func catastrophicCoef(level int) float64 {
	switch {
	case level >= 7:
		return 12
	case level >= 4:
		return 6
	}
	return 0
}

// flameMods returns the extra modifiers of basic, combo and rage hits. From
// level 5 they also scale with the global dragon flame bonus.
func flameMods(level int, mods ...string) []string {
	if level >= 5 {
		mods = append(mods, config.GlobalDragonFlameDmgPct)
	}
	return mods
}

func (d DragonGirl) Damage(level int, base config.Config, targetHP float64) Result {
	cfg := d.ApplyPassives(base, level)
	strength := cfg.GetOr(config.PStrength, 1.15)
	finalAtk := combat.FinalAtk(cfg, strength)

	basics := cfg.Get(config.NumBasicAttacks)
	combos := cfg.Get(config.NumCombos)
	rages := cfg.Get(config.NumRageStrikes)

	basicHit := combat.Damage(combat.SkillBasicAttack, cfg, finalAtk, 1.0,
		flameMods(level, config.BasicAtkDmgPct)...)
	comboHit := combat.Damage(combat.SkillComboAttack, cfg, finalAtk, 1.0,
		flameMods(level, config.BasicAtkDmgPct, config.ComboDmgPct)...)
	rageHit := combat.Damage(combat.SkillRage, cfg, finalAtk, cfg.GetOr(config.RageAtkCoef, 2.0),
		flameMods(level, config.RageDmgPct, config.SkillDmgPct)...)

	basicAttack := basics * basicHit
	comboAttack := combos * comboHit
	rage := rages * rageHit

	bCoef := breathCoef(level)
	breathHit := combat.Damage(combat.SkillDragonFlame, cfg, finalAtk, bCoef)
	breath := breathHit*(basics+combos) + breathHit*rages

	var catastrophic float64
	cCoef := catastrophicCoef(level)
	if cCoef > 0 {
		catastrophic = combat.Damage(combat.SkillDragonFlame, cfg, finalAtk, cCoef)
	}

	var wrath float64
	if level >= 8 {
		wrath = cappedHP(0.10, cfg.GetOr(config.MaxHP, 3_500_000_000), 100, finalAtk) +
			cappedHP(0.10, targetHP, 100, finalAtk)
	}

	shared := combat.ComputeAll(cfg, strength)
	bd := shared.Breakdowns
	delete(bd, combat.SkillBasicAttack)
	delete(bd, combat.SkillComboAttack)
	delete(bd, combat.SkillRage)

	bd[skillBreath] = explicitBreakdown(cfg, skillBreath, basics+combos+rages, bCoef, finalAtk, breath)
	if level >= 4 {
		bd[skillCatastrophic] = explicitBreakdown(cfg, skillCatastrophic, 1, cCoef, finalAtk, catastrophic)
	}
	if level >= 8 {
		// Flat health-based damage; the coefficient is nominal.
		bd[skillDragonWrath] = explicitBreakdown(cfg, skillDragonWrath, 1, 5, finalAtk, wrath)
	}

	res := newResult(d.ID(), level, bd)
	res.Damage[combat.SkillBasicAttack] = basicAttack
	res.Damage[combat.SkillComboAttack] = comboAttack
	res.Damage[skillBreath] = breath
	res.Damage[combat.SkillRage] = rage
	res.Damage[skillCatastrophic] = catastrophic
	res.Damage[skillDragonWrath] = wrath
	res.merge(shared.Damage)
	res.finish()
	return res
}

// Accumulate adds basic, combo, breath and rage every round, catastrophic on
// odd rounds once unlocked and dragon wrath every round from level 8.
func (d DragonGirl) Accumulate(_ config.Config, res Result) []RoundRecord {
	steady := res.Damage[combat.SkillBasicAttack] +
		res.Damage[combat.SkillComboAttack] +
		res.Damage[skillBreath] +
		res.Damage[combat.SkillRage]
	return accumulate(res, d.Rounds(), func(rnd int) float64 {
		dmg := steady
		if res.Level >= 4 && oddRound(rnd) {
			dmg += res.Damage[skillCatastrophic]
		}
		if res.Level >= 8 {
			dmg += res.Damage[skillDragonWrath]
		}
		return dmg
	})
}

func (d DragonGirl) Diagnose(base config.Config, level int) Diagnostic {
	return diagnose(d.ID(), d.ApplyPassives(base, level), level,
		config.PStrength,
		config.SkillDmgPct,
		config.GlobalSkillDmgPct,
		config.DragonFlameDmgPct,
		config.GlobalDragonFlameDmgPct,
		config.GlobalDaggerDmgPct,
		config.RageAtkCoef,
		config.GlobalDmgPct,
	)
}
