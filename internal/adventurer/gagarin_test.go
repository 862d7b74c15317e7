package adventurer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmgsim/internal/combat"
	"dmgsim/internal/config"
)

// 1e7 * 1.2 * (1 + 3000/100) * (1 + 250/100)
const gagarinFinalAtk = 1_302_000_000.0

func TestGagarinDaggerSplit(t *testing.T) {
	tests := []struct {
		level       int
		daggerHits  float64
		missileHits float64
		missileCoef float64
	}{
		{0, 10, 10, 0.80},
		{2, 10, 10, 1.00},
		{5, 7, 13, 1.00},
	}
	for _, tt := range tests {
		cfg := noCritConfig(map[string]float64{config.NumDaggers: 20})
		res := Gagarin{}.Damage(tt.level, cfg, testTargetHP)

		assert.InEpsilon(t, gagarinFinalAtk*0.45*tt.daggerHits, res.Damage[combat.SkillDagger], 1e-9)
		assert.InEpsilon(t, gagarinFinalAtk*tt.missileCoef*tt.missileHits, res.Damage[skillMissiles], 1e-9)

		dagger := res.Breakdowns[combat.SkillDagger]
		assert.InDelta(t, tt.daggerHits, dagger.Count, 1e-9)
		assert.Equal(t, 0.45, dagger.BaseCoef)

		missiles := res.Breakdowns[skillMissiles]
		assert.InDelta(t, tt.missileHits, missiles.Count, 1e-9)
		assert.Equal(t, tt.missileCoef, missiles.BaseCoef)
		assert.InEpsilon(t, res.Damage[skillMissiles], missiles.Total, 1e-9)
	}
}

func TestGagarinBonusCountedOnce(t *testing.T) {
	cfg := noCritConfig(map[string]float64{config.NumDaggers: 2, config.BonusDaggerCoef: 0.55})
	res := Gagarin{}.Damage(0, cfg, testTargetHP)

	// One dagger hit at 0.45 + 0.55.
	assert.InEpsilon(t, gagarinFinalAtk*1.0, res.Damage[combat.SkillDagger], 1e-9)
}

func TestGagarinBomb(t *testing.T) {
	cfg := noCritConfig(nil)

	assert.Zero(t, Gagarin{}.Damage(2, cfg, testTargetHP).Damage[skillBomb])

	res := Gagarin{}.Damage(4, cfg, testTargetHP)
	assert.InEpsilon(t, gagarinFinalAtk*9, res.Damage[skillBomb], 1e-9)
	require.Contains(t, res.Breakdowns, skillBomb)
	assert.Equal(t, res.Damage[skillBomb], res.Breakdowns[skillBomb].Total)

	res = Gagarin{}.Damage(7, cfg, testTargetHP)
	assert.InEpsilon(t, gagarinFinalAtk*18+0.10*testTargetHP, res.Damage[skillBomb], 1e-9)
}

func TestGagarinAccumulate(t *testing.T) {
	cfg := noCritConfig(map[string]float64{config.NumDaggers: 10})
	g := Gagarin{}
	res := g.Damage(7, cfg, testTargetHP)
	rounds := g.Accumulate(cfg, res)

	steady := res.Total - res.Damage[skillBomb]
	bomb := res.Damage[skillBomb]
	require.Greater(t, bomb, 0.0)

	assert.InEpsilon(t, steady, rounds[0].TotalDamage, 1e-9)
	assert.InEpsilon(t, 2*steady, rounds[1].TotalDamage, 1e-9)
	assert.InEpsilon(t, 3*steady+bomb, rounds[2].TotalDamage, 1e-9)
	assert.InEpsilon(t, 4*steady+bomb, rounds[3].TotalDamage, 1e-9)
	// Bombs on rounds 3, 5, 7 and 9.
	assert.InEpsilon(t, 10*steady+4*bomb, rounds[9].TotalDamage, 1e-9)
}

func TestGagarinBombValues(t *testing.T) {
	tests := []struct {
		name     string
		level    int
		targetHP float64
		want     float64
	}{
		{"coef 9", 4, testTargetHP, 9 * gagarinFinalAtk},
		{"coef 18 plus health", 7, testTargetHP, 18*gagarinFinalAtk + 0.10*testTargetHP},
		{"health capped by attack", 7, 1e13, 18*gagarinFinalAtk + 100*gagarinFinalAtk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Gagarin{}.Damage(tt.level, noCritConfig(nil), tt.targetHP)
			assert.InEpsilon(t, tt.want, res.Damage[skillBomb], 1e-9)
		})
	}
}
