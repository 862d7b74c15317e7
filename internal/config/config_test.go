package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	for _, k := range AllKeys {
		_, ok := cfg[k]
		assert.True(t, ok, "missing key %s", k)
	}
	assert.Equal(t, 10_000_000.0, cfg.Get(PAtk))
	assert.Equal(t, 3000.0, cfg.Get(PAtkPct))
	assert.Equal(t, 500.0, cfg.Get(CritDmgPct))
	assert.Equal(t, 4.0, cfg.Get(NumCombos))
	assert.Equal(t, 0.0, cfg.Get(NumDaggers))
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsAreIndependent(t *testing.T) {
	a := Defaults()
	a[PAtk] = 1
	assert.Equal(t, 10_000_000.0, Base().Get(PAtk))
}

func TestGetOr(t *testing.T) {
	cfg := Config{NumCombos: 0}
	assert.Equal(t, 0.0, cfg.GetOr(NumCombos, 1))
	assert.Equal(t, 1.0, cfg.GetOr(NumBasicAttacks, 1))
	assert.Equal(t, 0.0, cfg.Get(NumBasicAttacks))
}

func TestWith(t *testing.T) {
	base := Base()
	out := base.With(map[string]float64{CritDmgPct: 600, "name": 1})

	assert.Equal(t, 600.0, out.Get(CritDmgPct))
	assert.Equal(t, 500.0, base.Get(CritDmgPct))
	_, hasName := out["name"]
	assert.False(t, hasName)
}

func TestCloneAndAdd(t *testing.T) {
	a := Config{GlobalDmgPct: 10}
	b := a.Clone()
	b.Add(GlobalDmgPct, 5)

	assert.Equal(t, 10.0, a.Get(GlobalDmgPct))
	assert.Equal(t, 15.0, b.Get(GlobalDmgPct))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   float64
		wantErr error
	}{
		{"negative count", NumDaggers, -1, ErrNegativeCount},
		{"negative stacks", MaxPoisonStacks, -2, ErrNegativeCount},
		{"nan crit", CritDmgPct, math.NaN(), ErrNonFiniteCrit},
		{"inf crit chance", SkillCritChancePct, math.Inf(1), ErrNonFiniteCrit},
		{"zero count is fine", NumCombos, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Base().With(map[string]float64{tt.key: tt.value}).Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestIsKnownKey(t *testing.T) {
	assert.True(t, IsKnownKey(GlobalDragonFlameDmgPct))
	assert.True(t, IsKnownKey(EnemyHP))
	assert.False(t, IsKnownKey("Crit_DMG"))
}

func writeScenarios(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenarios(t *testing.T) {
	t.Run("two scenarios", func(t *testing.T) {
		path := writeScenarios(t, `scenarios:
  - name: baseline
  - name: daggers
    values:
      Num_Daggers: 20
      Global_Dagger_DMG_pct: 40
`)
		a, b, err := LoadScenarios(path)
		require.NoError(t, err)
		assert.Equal(t, "baseline", a.Name)
		assert.Equal(t, "daggers", b.Name)
		assert.Equal(t, 20.0, b.Config().Get(NumDaggers))
		assert.Equal(t, 0.0, a.Config().Get(NumDaggers))
	})

	t.Run("single scenario is compared with itself", func(t *testing.T) {
		path := writeScenarios(t, `scenarios:
  - name: only
    values:
      P_ATK: 2000
`)
		a, b, err := LoadScenarios(path)
		require.NoError(t, err)
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.Values, b.Values)

		b.Values[PAtk] = 1
		assert.Equal(t, 2000.0, a.Values[PAtk])
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeScenarios(t, `scenarios:
  - name: typo
    values:
      Global_Damage: 10
`)
		_, _, err := LoadScenarios(path)
		assert.ErrorIs(t, err, ErrUnknownKey)
	})

	t.Run("too many", func(t *testing.T) {
		path := writeScenarios(t, `scenarios: [{name: a}, {name: b}, {name: c}]`)
		_, _, err := LoadScenarios(path)
		assert.ErrorIs(t, err, ErrScenarioCount)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := LoadScenarios(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadBundledScenarios(t *testing.T) {
	a, b, err := LoadScenarios(filepath.Join("..", "..", "assets", "scenarios.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 10.0, a.Config().Get(NumDaggers))
	assert.Equal(t, 20.0, b.Config().Get(NumDaggers))
	assert.NoError(t, b.Config().Validate())
}
