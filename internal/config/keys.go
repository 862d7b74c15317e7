package config

// Core stats
const (
	PAtk          = "P_ATK"
	PStrength     = "P_Strength"
	PAtkPct       = "P_ATK_pct"
	PGlobalAtkPct = "P_Global_ATK_pct"
)

// Crit
const (
	CritChancePct       = "Crit_Chance_pct"
	SkillCritChancePct  = "Skill_Crit_Chance_pct"
	WeaponCritChancePct = "Weapon_Crit_Chance_pct"
	BasicCritChancePct  = "Basic_Crit_Chance_pct"
	CritDmgPct          = "Crit_DMG_pct"
)

// Local modifiers apply to the skills that list them.
const (
	SkillDmgPct       = "Skill_DMG_pct"
	PhysicalDmgPct    = "Physical_DMG_pct"
	DaggerDmgPct      = "Dagger_DMG_pct"
	BoltDmgPct        = "Bolt_DMG_pct"
	ChiDmgPct         = "Chi_DMG_pct"
	DragonFlameDmgPct = "Dragon_Flame_DMG_pct"
	FireDmgPct        = "Fire_DMG_pct"
	IceDmgPct         = "Ice_DMG_pct"
	LightningDmgPct   = "Lightning_DMG_pct"
	BasicAtkDmgPct    = "Basic_ATK_DMG_pct"
	ComboDmgPct       = "Combo_DMG_pct"
	RageDmgPct        = "Rage_DMG_pct"
	CounterDmgPct     = "Counter_DMG_pct"
	PoisonDmgPct      = "Poison_DMG_pct"
	BurnDmgPct        = "Burn_DMG_pct"
	LightSpearDmgPct  = "Light_Spear_DMG_pct"
	DotDmgPct         = "DoT_DMG_pct"
	NinjutsuDmgPct    = "Ninjutsu_DMG_pct"
	DamagePct         = "Damage_pct"
)

// GlobalPrefix turns a local modifier key into its global counterpart.
const GlobalPrefix = "Global_"

// Global modifiers stack additively in their own multiplier.
const (
	GlobalSkillDmgPct       = "Global_Skill_DMG_pct"
	GlobalPhysicalDmgPct    = "Global_Physical_DMG_pct"
	GlobalDaggerDmgPct      = "Global_Dagger_DMG_pct"
	GlobalBoltDmgPct        = "Global_Bolt_DMG_pct"
	GlobalChiDmgPct         = "Global_Chi_DMG_pct"
	GlobalDragonFlameDmgPct = "Global_Dragon_Flame_DMG_pct"
	GlobalFireDmgPct        = "Global_Fire_DMG_pct"
	GlobalIceDmgPct         = "Global_Ice_DMG_pct"
	GlobalLightningDmgPct   = "Global_Lightning_DMG_pct"
	GlobalBasicAtkDmgPct    = "Global_Basic_ATK_DMG_pct"
	GlobalComboDmgPct       = "Global_Combo_DMG_pct"
	GlobalRageDmgPct        = "Global_Rage_DMG_pct"
	GlobalCounterDmgPct     = "Global_Counter_DMG_pct"
	GlobalPoisonDmgPct      = "Global_Poison_DMG_pct"
	GlobalBurnDmgPct        = "Global_Burn_DMG_pct"
	GlobalLightSpearDmgPct  = "Global_Light_Spear_DMG_pct"
	GlobalDotDmgPct         = "Global_DoT_DMG_pct"
	GlobalNinjutsuDmgPct    = "Global_Ninjutsu_DMG_pct"
	GlobalDmgPct            = "Global_DMG_pct"
)

// Bonus coefficients
const (
	BonusDaggerCoef     = "Bonus_Dagger_Coef"
	BonusBoltCoef       = "Bonus_Bolt_Coef"
	BonusChiCoef        = "Bonus_Chi_Coef"
	BonusRageCoef       = "Bonus_Rage_Coef"
	BonusLightSpearCoef = "Bonus_Light_Spear_Coef"
	BonusIcySpikeCoef   = "Bonus_Icy_Spike_Coef"
	BonusBasicCoef      = "Bonus_Basic_Coef"
	BonusComboCoef      = "Bonus_Combo_Coef"
	BonusCounterCoef    = "Bonus_Counter_Coef"
	BonusPoisonCoef     = "Bonus_Poison_Coef"
	BonusBurnCoef       = "Bonus_Burn_Coef"
	BonusLightningCoef  = "Bonus_Lightning_Coef"
	BonusFireCoef       = "Bonus_Fire_Coef"
)

// Skill usage counts per cycle
const (
	NumCombos            = "Num_Combos"
	NumBasicAttacks      = "Num_Basic_Attacks"
	NumDaggers           = "Num_Daggers"
	NumRageStrikes       = "Num_Rage_Strikes"
	NumBolts             = "Num_Bolts"
	NumDeathBolts        = "Num_Death_Bolts"
	NumChiHits           = "Num_Chi_Hits"
	NumBurns             = "Num_Burns"
	NumPoisons           = "Num_Poisons"
	NumLightSpears       = "Num_Light_Spears"
	NumIcySpikes         = "Num_Icy_Spikes"
	NumCounterAttacks    = "Num_Counter_Attacks"
	NumNinjutsuSkills    = "Num_Ninjutsu_Skills"
	NumDragonFlameSkills = "Num_Dragon_Flame_Skills"
)

// DoT stack caps
const (
	MaxPoisonStacks = "Max_Poison_Stacks"
	MaxBurnStacks   = "Max_Burn_Stacks"
)

const FinalDmgPct = "Final_DMG_pct"

// Environment
const (
	RageAtkCoef = "Rage_ATK_coef"
	EnemyHP     = "ENEMY_HP"
	MaxHP       = "MAX_HP"
)

var (
	PlayerStatKeys = []string{PAtk, PStrength, PAtkPct, PGlobalAtkPct}
	CritKeys       = []string{CritChancePct, SkillCritChancePct, WeaponCritChancePct, BasicCritChancePct, CritDmgPct}
	LocalModKeys   = []string{
		SkillDmgPct, PhysicalDmgPct, DaggerDmgPct, BoltDmgPct, ChiDmgPct, DragonFlameDmgPct,
		FireDmgPct, IceDmgPct, LightningDmgPct, BasicAtkDmgPct, ComboDmgPct, RageDmgPct,
		CounterDmgPct, PoisonDmgPct, BurnDmgPct, LightSpearDmgPct, DotDmgPct, DamagePct, NinjutsuDmgPct,
	}
	GlobalModKeys = []string{
		GlobalSkillDmgPct, GlobalPhysicalDmgPct, GlobalDaggerDmgPct, GlobalBoltDmgPct, GlobalChiDmgPct,
		GlobalDragonFlameDmgPct, GlobalFireDmgPct, GlobalIceDmgPct, GlobalLightningDmgPct,
		GlobalBasicAtkDmgPct, GlobalComboDmgPct, GlobalRageDmgPct, GlobalCounterDmgPct,
		GlobalPoisonDmgPct, GlobalBurnDmgPct, GlobalLightSpearDmgPct, GlobalDotDmgPct,
		GlobalNinjutsuDmgPct, GlobalDmgPct,
	}
	BonusCoefKeys = []string{
		BonusDaggerCoef, BonusBoltCoef, BonusChiCoef, BonusRageCoef, BonusLightSpearCoef,
		BonusIcySpikeCoef, BonusBasicCoef, BonusComboCoef, BonusCounterCoef, BonusPoisonCoef,
		BonusBurnCoef, BonusLightningCoef, BonusFireCoef,
	}
	SkillCountKeys = []string{
		NumCombos, NumBasicAttacks, NumDaggers, NumRageStrikes, NumBolts, NumDeathBolts, NumChiHits,
		NumBurns, NumPoisons, NumLightSpears, NumIcySpikes, NumCounterAttacks, NumNinjutsuSkills,
		NumDragonFlameSkills,
	}
	DotStackKeys    = []string{MaxPoisonStacks, MaxBurnStacks}
	EnvironmentKeys = []string{EnemyHP, MaxHP, RageAtkCoef}
)

// AllKeys lists every recognised configuration key in group order.
var AllKeys = concat(
	PlayerStatKeys, CritKeys, LocalModKeys, GlobalModKeys, BonusCoefKeys,
	SkillCountKeys, DotStackKeys, EnvironmentKeys, []string{FinalDmgPct},
)

var knownKeys = func() map[string]bool {
	m := make(map[string]bool, len(AllKeys))
	for _, k := range AllKeys {
		m[k] = true
	}
	return m
}()

// IsKnownKey reports whether key is part of AllKeys.
func IsKnownKey(key string) bool { return knownKeys[key] }

func concat(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
