package sim

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"dmgsim/internal/adventurer"
	"dmgsim/internal/config"
)

const (
	LabelA = "Scenario 1"
	LabelB = "Scenario 2"
)

// ScenarioResult holds one adventurer's output for one scenario.
type ScenarioResult struct {
	Skills      []adventurer.Result      `json:"skills" yaml:"skills"`
	Rounds      []adventurer.RoundRecord `json:"rounds" yaml:"rounds"`
	Diagnostics []adventurer.Diagnostic  `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Tables is the full simulation output handed to presentation layers.
type Tables struct {
	Scenarios [2]config.Scenario       `json:"scenarios" yaml:"scenarios"`
	Skills    []adventurer.Result      `json:"skills" yaml:"skills"`
	Rounds    []adventurer.RoundRecord `json:"rounds" yaml:"rounds"`
}

// RunScenario layers overrides on the base config and runs kit at each of its
// levels. The target's health comes from ENEMY_HP.
func RunScenario(kit adventurer.Kit, overrides map[string]float64, label string) (ScenarioResult, error) {
	cfg := config.Base().With(overrides)
	if err := cfg.Validate(); err != nil {
		return ScenarioResult{}, fmt.Errorf("%s %s: %w", kit.ID(), label, err)
	}

	var out ScenarioResult
	for _, lvl := range kit.Levels() {
		res := kit.Damage(lvl, cfg, cfg.GetOr(config.EnemyHP, 3_500_000_000_000))
		res.Scenario = label
		out.Skills = append(out.Skills, res)
		out.Rounds = append(out.Rounds, kit.Accumulate(cfg, res)...)
		out.Diagnostics = append(out.Diagnostics, kit.Diagnose(cfg, lvl))

		slog.Debug("level computed",
			"adventurer", kit.ID(),
			"scenario", label,
			"level", lvl,
			"total", res.Total)
	}
	return out, nil
}

// RunFull runs every adventurer against both scenarios concurrently. Rows come
// back ordered by adventurer, then scenario, then level.
func RunFull(ctx context.Context, a, b config.Scenario) (Tables, error) {
	kits := adventurer.All()
	scenarios := [2]config.Scenario{a, b}
	labels := [2]string{LabelA, LabelB}
	results := make([]ScenarioResult, len(kits)*len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	for ki, kit := range kits {
		kit := kit
		for si := range scenarios {
			si := si
			slot := ki*len(scenarios) + si
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				res, err := RunScenario(kit, scenarios[si].Values, labels[si])
				if err != nil {
					return err
				}
				results[slot] = res
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Tables{}, fmt.Errorf("running simulation: %w", err)
	}

	t := Tables{Scenarios: scenarios}
	for _, r := range results {
		t.Skills = append(t.Skills, r.Skills...)
		t.Rounds = append(t.Rounds, r.Rounds...)
	}
	slog.Info("simulation finished",
		"scenario_a", a.Name,
		"scenario_b", b.Name,
		"skill_rows", len(t.Skills),
		"round_rows", len(t.Rounds))
	return t, nil
}
