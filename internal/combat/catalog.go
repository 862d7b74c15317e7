package combat

import (
	"strings"

	"dmgsim/internal/config"
)

// Catalog skill IDs.
const (
	SkillBasicAttack = "basic_attack"
	SkillComboAttack = "combo_attack"
	SkillDagger      = "dagger"
	SkillBolt        = "bolt"
	SkillDeathBolt   = "death_bolt"
	SkillChi         = "chi"
	SkillRage        = "rage"
	SkillIcySpike    = "icy_spike"
	SkillPoisonDot   = "poison_dot"
	SkillBurnDot     = "burn_dot"
	SkillLightSpear  = "light_spear"
	SkillCounter     = "counter"
	SkillNinjutsu    = "ninjutsu_skill"
	SkillDragonFlame = "dragon_flame_skill"
)

// SkillDef describes how one catalog skill resolves its damage.
type SkillDef struct {
	ID string
	// Coef is nil for skills whose base coefficient is supplied per call.
	Coef       *float64
	BonusKeys  []string
	LocalMods  []string
	GlobalMods []string
	CountKey   string
	StackKey   string
	FinalBonus string
}

// UsageKey is the config key that drives how often the skill fires.
func (s SkillDef) UsageKey() string {
	if s.CountKey != "" {
		return s.CountKey
	}
	return s.StackKey
}

// BaseCoef returns the catalog coefficient, falling back to 1.0 for skills
// that carry none.
func (s SkillDef) BaseCoef() float64 {
	if s.Coef == nil {
		return 1.0
	}
	return *s.Coef
}

func (s SkillDef) clone() SkillDef {
	out := s
	out.BonusKeys = append([]string(nil), s.BonusKeys...)
	out.LocalMods = append([]string(nil), s.LocalMods...)
	out.GlobalMods = append([]string(nil), s.GlobalMods...)
	return out
}

// Catalog is an ordered, read-only set of skill definitions.
type Catalog struct {
	order []string
	byID  map[string]SkillDef
}

func NewCatalog(defs []SkillDef) *Catalog {
	c := &Catalog{byID: make(map[string]SkillDef, len(defs))}
	for _, d := range defs {
		if _, dup := c.byID[d.ID]; !dup {
			c.order = append(c.order, d.ID)
		}
		c.byID[d.ID] = d.clone()
	}
	return c
}

func (c *Catalog) Lookup(id string) (SkillDef, bool) {
	d, ok := c.byID[id]
	if !ok {
		return SkillDef{}, false
	}
	return d.clone(), true
}

func (c *Catalog) IDs() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Skills() []SkillDef {
	out := make([]SkillDef, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id].clone())
	}
	return out
}

var catalog = NewCatalog([]SkillDef{
	{ID: SkillBasicAttack, Coef: coef(1.0), BonusKeys: keys(config.BonusBasicCoef),
		LocalMods:  keys(config.BasicAtkDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalBasicAtkDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumBasicAttacks},
	{ID: SkillComboAttack, Coef: coef(1.0), BonusKeys: keys(config.BonusComboCoef),
		LocalMods:  keys(config.BasicAtkDmgPct, config.ComboDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalBasicAtkDmgPct, config.GlobalComboDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumCombos},
	{ID: SkillDagger, Coef: coef(0.45), BonusKeys: keys(config.BonusDaggerCoef),
		LocalMods:  keys(config.DaggerDmgPct, config.PhysicalDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalDaggerDmgPct, config.GlobalPhysicalDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumDaggers},
	{ID: SkillBolt, Coef: coef(0.3), BonusKeys: keys(config.BonusBoltCoef, config.BonusLightningCoef),
		LocalMods:  keys(config.BoltDmgPct, config.LightningDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalBoltDmgPct, config.GlobalLightningDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumBolts},
	{ID: SkillDeathBolt, Coef: coef(0.9), BonusKeys: keys(config.BonusBoltCoef, config.BonusLightningCoef),
		LocalMods:  keys(config.BoltDmgPct, config.LightningDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalBoltDmgPct, config.GlobalLightningDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumDeathBolts},
	{ID: SkillChi, Coef: coef(0.7), BonusKeys: keys(config.BonusChiCoef),
		LocalMods:  keys(config.ChiDmgPct, config.PhysicalDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalChiDmgPct, config.GlobalPhysicalDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumChiHits},
	{ID: SkillRage, Coef: coef(2.0), BonusKeys: keys(config.BonusRageCoef),
		LocalMods:  keys(config.RageDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalRageDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumRageStrikes},
	{ID: SkillIcySpike, Coef: coef(0.3), BonusKeys: keys(config.BonusIcySpikeCoef),
		LocalMods:  keys(config.IceDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalIceDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumIcySpikes},
	{ID: SkillPoisonDot, Coef: coef(0.2), BonusKeys: keys(config.BonusPoisonCoef),
		LocalMods:  keys(config.PoisonDmgPct, config.DotDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalPoisonDmgPct, config.GlobalDotDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumPoisons, StackKey: config.MaxPoisonStacks},
	{ID: SkillBurnDot, Coef: coef(0.3), BonusKeys: keys(config.BonusBurnCoef),
		LocalMods:  keys(config.BurnDmgPct, config.FireDmgPct, config.DotDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalBurnDmgPct, config.GlobalFireDmgPct, config.GlobalDotDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumBurns, StackKey: config.MaxBurnStacks},
	{ID: SkillLightSpear, Coef: coef(0.3), BonusKeys: keys(config.BonusLightSpearCoef),
		LocalMods:  keys(config.LightSpearDmgPct, config.PhysicalDmgPct, config.SkillDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalLightSpearDmgPct, config.GlobalPhysicalDmgPct, config.GlobalSkillDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumLightSpears},
	{ID: SkillCounter, Coef: coef(1.0), BonusKeys: keys(config.BonusCounterCoef),
		LocalMods:  keys(config.CounterDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalCounterDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumCounterAttacks},
	{ID: SkillNinjutsu, Coef: coef(1.0),
		LocalMods:  keys(config.SkillDmgPct, config.NinjutsuDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalSkillDmgPct, config.GlobalNinjutsuDmgPct, config.GlobalDmgPct),
		CountKey:   config.NumNinjutsuSkills},
	{ID: SkillDragonFlame,
		LocalMods:  keys(config.SkillDmgPct, config.DragonFlameDmgPct, config.DamagePct),
		GlobalMods: keys(config.GlobalSkillDmgPct, config.GlobalDmgPct, config.GlobalDragonFlameDmgPct),
		CountKey:   config.NumDragonFlameSkills, FinalBonus: config.FinalDmgPct},
})

// Default returns the process-wide skill catalog.
func Default() *Catalog { return catalog }

// Lookup resolves id in the default catalog.
func Lookup(id string) (SkillDef, bool) { return catalog.Lookup(id) }

// SkillIDs lists the default catalog in declaration order.
func SkillIDs() []string { return catalog.IDs() }

// BonusKeyFor derives the bonus coefficient key a skill name maps to,
// e.g. "light_spear" -> "Bonus_Light_Spear_Coef", "poison_dot" -> "Bonus_Poison_Coef".
func BonusKeyFor(skill string) string {
	parts := strings.Split(strings.ReplaceAll(skill, "_dot", ""), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return "Bonus_" + strings.Join(parts, "_") + "_Coef"
}

func coef(v float64) *float64 { return &v }

func keys(k ...string) []string { return k }
