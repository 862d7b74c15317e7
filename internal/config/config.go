package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrNegativeCount = errors.New("negative usage count")
	ErrNonFiniteCrit = errors.New("crit value is not a finite number")
	ErrUnknownKey    = errors.New("unknown config key")
)

// Config maps parameter keys to numeric values. A missing key reads as 0.
type Config map[string]float64

// Defaults returns the non-zero defaults merged over a zero value for every
// key in AllKeys.
func Defaults() Config {
	cfg := make(Config, len(AllKeys))
	for _, k := range AllKeys {
		cfg[k] = 0
	}
	for k, v := range map[string]float64{
		PAtk:          10_000_000,
		PStrength:     1.15,
		PAtkPct:       3000,
		PGlobalAtkPct: 250,

		CritChancePct:       100,
		SkillCritChancePct:  100,
		WeaponCritChancePct: 100,
		BasicCritChancePct:  100,
		CritDmgPct:          500,

		NumBasicAttacks: 1,
		NumCombos:       4,
		NumRageStrikes:  1,

		SkillDmgPct: 100,

		MaxPoisonStacks: 5,
		MaxBurnStacks:   5,

		RageAtkCoef: 2.6,
		EnemyHP:     3_500_000_000,
		MaxHP:       3_500_000_000,
	} {
		cfg[k] = v
	}
	return cfg
}

// Base is the configuration every scenario is layered on.
func Base() Config { return Defaults() }

// Get returns the value for key, or 0 when it is not set.
func (c Config) Get(key string) float64 {
	return c[key]
}

// GetOr returns the value for key, or def when the key is absent.
func (c Config) GetOr(key string, def float64) float64 {
	if v, ok := c[key]; ok {
		return v
	}
	return def
}

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// With returns a copy of c with overrides applied on top. The "name" key is
// scenario metadata and is skipped.
func (c Config) With(overrides map[string]float64) Config {
	out := c.Clone()
	for k, v := range overrides {
		if k == "name" {
			continue
		}
		out[k] = v
	}
	return out
}

// Add increments key by delta in place.
func (c Config) Add(key string, delta float64) {
	c[key] += delta
}

// Validate rejects values that can only come from a programming or data
// entry mistake: negative usage counts or stack caps, and crit inputs that
// are not finite.
func (c Config) Validate() error {
	for _, k := range SkillCountKeys {
		if c[k] < 0 {
			return fmt.Errorf("%s=%v: %w", k, c[k], ErrNegativeCount)
		}
	}
	for _, k := range DotStackKeys {
		if c[k] < 0 {
			return fmt.Errorf("%s=%v: %w", k, c[k], ErrNegativeCount)
		}
	}
	for _, k := range CritKeys {
		v := c[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%s=%v: %w", k, v, ErrNonFiniteCrit)
		}
	}
	return nil
}
