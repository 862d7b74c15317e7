package adventurer

import (
	"errors"
	"fmt"
	"slices"

	"dmgsim/internal/combat"
	"dmgsim/internal/config"
)

type ID string

const (
	GagarinID    ID = "gagarin"
	LeonardoID   ID = "leonardo"
	DragonGirlID ID = "dragon_girl"
)

var ErrUnknownAdventurer = errors.New("unknown adventurer")

// Kit is one adventurer's hand-written skill logic on top of the shared
// formula library.
type Kit interface {
	ID() ID
	// Levels are the levels where the kit changes behaviour.
	Levels() []int
	Rounds() int
	// ApplyPassives returns a copy of cfg with the level's passives applied.
	ApplyPassives(cfg config.Config, level int) config.Config
	// Damage applies passives to cfg and computes per-cycle damage by skill.
	Damage(level int, cfg config.Config, targetHP float64) Result
	// Accumulate turns one Damage result into cumulative round totals. cfg is
	// the scenario config the result was computed from.
	Accumulate(cfg config.Config, res Result) []RoundRecord
	Diagnose(cfg config.Config, level int) Diagnostic
}

// Result is the per-cycle damage of one adventurer at one level.
type Result struct {
	Adventurer ID                          `json:"source" yaml:"source"`
	Scenario   string                      `json:"scenario" yaml:"scenario"`
	Level      int                         `json:"level" yaml:"level"`
	Damage     map[string]float64          `json:"damage" yaml:"damage"`
	Breakdowns map[string]combat.Breakdown `json:"breakdowns" yaml:"breakdowns"`
	// Cooldown is the secondary ability's cooldown in rounds; not damage.
	Cooldown int     `json:"cooldown,omitempty" yaml:"cooldown,omitempty"`
	Total    float64 `json:"total" yaml:"total"`
}

// RoundRecord is the cumulative damage after Round rounds.
type RoundRecord struct {
	Adventurer  ID      `json:"source" yaml:"source"`
	Scenario    string  `json:"scenario" yaml:"scenario"`
	Level       int     `json:"level" yaml:"level"`
	Round       int     `json:"round" yaml:"round"`
	TotalDamage float64 `json:"total_damage" yaml:"total_damage"`
}

// Diagnostic exposes resolved intermediate values for inspection.
type Diagnostic struct {
	Adventurer ID                 `json:"source" yaml:"source"`
	Level      int                `json:"level" yaml:"level"`
	FinalAtk   float64            `json:"final_atk" yaml:"final_atk"`
	Values     map[string]float64 `json:"values" yaml:"values"`
}

var kits = []Kit{Leonardo{}, Gagarin{}, DragonGirl{}}

// All returns every kit in report order.
func All() []Kit {
	return append([]Kit(nil), kits...)
}

func ByID(id ID) (Kit, error) {
	for _, k := range kits {
		if k.ID() == id {
			return k, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", id, ErrUnknownAdventurer)
}

// ApplyPassives validates cfg and applies the passives of adventurer id at
// level to a copy of it.
func ApplyPassives(cfg config.Config, level int, id ID) (config.Config, error) {
	k, err := ByID(id)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	}
	return k.ApplyPassives(cfg, level), nil
}

func newResult(id ID, level int, breakdowns map[string]combat.Breakdown) Result {
	if breakdowns == nil {
		breakdowns = map[string]combat.Breakdown{}
	}
	return Result{
		Adventurer: id,
		Level:      level,
		Damage:     map[string]float64{},
		Breakdowns: breakdowns,
	}
}

// merge copies shared skill damage that the kit did not compute itself.
func (r *Result) merge(shared map[string]float64, overridden ...string) {
	skip := make(map[string]bool, len(overridden))
	for _, k := range overridden {
		skip[k] = true
	}
	for k, v := range shared {
		if skip[k] {
			continue
		}
		if _, ok := r.Damage[k]; ok {
			continue
		}
		r.Damage[k] = v
	}
}

// finish zero-fills every catalog skill so downstream tables share one schema,
// then sums the total.
func (r *Result) finish() {
	for _, id := range combat.SkillIDs() {
		if _, ok := r.Damage[id]; !ok {
			r.Damage[id] = 0
		}
	}
	r.Total = r.sumExcept()
}

// sumExcept adds every damage entry except the named ones, in key order so
// repeated runs produce identical totals.
func (r Result) sumExcept(names ...string) float64 {
	keys := make([]string, 0, len(r.Damage))
	for k := range r.Damage {
		if !slices.Contains(names, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	total := 0.0
	for _, k := range keys {
		total += r.Damage[k]
	}
	return total
}

func accumulate(res Result, rounds int, perRound func(round int) float64) []RoundRecord {
	out := make([]RoundRecord, 0, rounds)
	running := 0.0
	for rnd := 1; rnd <= rounds; rnd++ {
		running += perRound(rnd)
		out = append(out, RoundRecord{
			Adventurer:  res.Adventurer,
			Scenario:    res.Scenario,
			Level:       res.Level,
			Round:       rnd,
			TotalDamage: running,
		})
	}
	return out
}

// explicitBreakdown records damage computed outside the standard formula.
func explicitBreakdown(cfg config.Config, skill string, count, coef, finalAtk, total float64) combat.Breakdown {
	return combat.NewBreakdown(combat.BreakdownParams{
		Skill:      skill,
		Count:      count,
		BaseCoef:   coef,
		FinalAtk:   finalAtk,
		LocalMult:  1,
		GlobalMult: 1,
		FinalMult:  1,
		CritMult:   combat.ExpectedCritMultiplier(cfg, skill),
		Total:      &total,
	})
}

func diagnose(id ID, cfg config.Config, level int, keys ...string) Diagnostic {
	d := Diagnostic{
		Adventurer: id,
		Level:      level,
		FinalAtk:   combat.FinalAtk(cfg, cfg.Get(config.PStrength)),
		Values:     make(map[string]float64, len(keys)),
	}
	for _, k := range keys {
		d.Values[k] = cfg.Get(k)
	}
	return d
}

// cappedHP is a health-based flat damage term that may not exceed capMult
// times final attack.
func cappedHP(pct, hp, capMult, finalAtk float64) float64 {
	return min(pct*hp, capMult*finalAtk)
}

func oddRound(rnd int) bool { return rnd%2 == 1 }
