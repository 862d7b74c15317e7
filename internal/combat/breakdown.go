package combat

// Breakdown is the itemised trace of one skill's damage in one config.
type Breakdown struct {
	Skill      string  `json:"skill" yaml:"skill"`
	Count      float64 `json:"count" yaml:"count"`
	BaseCoef   float64 `json:"base_coef" yaml:"base_coef"`
	BonusCoef  float64 `json:"bonus_coef" yaml:"bonus_coef"`
	TotalCoef  float64 `json:"total_coef" yaml:"total_coef"`
	FinalAtk   float64 `json:"final_atk" yaml:"final_atk"`
	LocalMult  float64 `json:"local_mult" yaml:"local_mult"`
	GlobalMult float64 `json:"global_mult" yaml:"global_mult"`
	FinalMult  float64 `json:"final_mult" yaml:"final_mult"`
	CritMult   float64 `json:"crit_mult" yaml:"crit_mult"`
	Total      float64 `json:"total_damage" yaml:"total_damage"`
}

type BreakdownParams struct {
	Skill      string
	Count      float64
	BaseCoef   float64
	BonusCoef  float64
	FinalAtk   float64
	LocalMult  float64
	GlobalMult float64
	FinalMult  float64
	CritMult   float64
	// Total, when set, replaces the product of the components.
	Total *float64
}

func NewBreakdown(p BreakdownParams) Breakdown {
	b := Breakdown{
		Skill:      p.Skill,
		Count:      p.Count,
		BaseCoef:   p.BaseCoef,
		BonusCoef:  p.BonusCoef,
		TotalCoef:  p.BaseCoef + p.BonusCoef,
		FinalAtk:   p.FinalAtk,
		LocalMult:  p.LocalMult,
		GlobalMult: p.GlobalMult,
		FinalMult:  p.FinalMult,
		CritMult:   p.CritMult,
	}
	if p.Total != nil {
		b.Total = *p.Total
		return b
	}
	b.Total = b.PerHit() * b.Count
	return b
}

// PerHit is the damage of a single hit.
func (b Breakdown) PerHit() float64 {
	return b.FinalAtk * b.TotalCoef * b.LocalMult * b.GlobalMult * b.FinalMult * b.CritMult
}

// WithTotal returns a copy carrying an explicit pre-computed total.
func (b Breakdown) WithTotal(total float64) Breakdown {
	b.Total = total
	return b
}

// Fields flattens the breakdown into a column map.
func (b Breakdown) Fields() map[string]any {
	return map[string]any{
		"Skill":       b.Skill,
		"Count":       b.Count,
		"BaseCoef":    b.BaseCoef,
		"BonusCoef":   b.BonusCoef,
		"TotalCoef":   b.TotalCoef,
		"FinalATK":    b.FinalAtk,
		"LocalMult":   b.LocalMult,
		"GlobalMult":  b.GlobalMult,
		"FinalMult":   b.FinalMult,
		"CritMult":    b.CritMult,
		"TotalDamage": b.Total,
	}
}
