// Package scoring turns a skill-match result plus the role/profile
// classifications into a single bounded percentage score.
package scoring

// Policy holds the scoring tuning parameters. These are policy values, not
// algorithmic invariants: deployments may override them via configuration.
type Policy struct {
	// CoreWeight and OverallWeight blend the core-skill match rate with the
	// overall match rate. They should sum to 1.
	CoreWeight    float64 `json:"core_weight,omitempty"`
	OverallWeight float64 `json:"overall_weight,omitempty"`

	// GapPenalty is applied when missing skills outnumber matched skills by
	// more than GapRatio.
	GapPenalty float64 `json:"gap_penalty,omitempty"`
	GapRatio   float64 `json:"gap_ratio,omitempty"`

	// BonusFactor rewards near-complete core coverage (core rate at least
	// BonusCoreRate with at least BonusMinCore core matches; the floor keeps
	// a trivial 1-of-1 match from triggering it). The boosted score is capped
	// at SkillScoreCeil.
	BonusFactor   float64 `json:"bonus_factor,omitempty"`
	BonusCoreRate float64 `json:"bonus_core_rate,omitempty"`
	BonusMinCore  int     `json:"bonus_min_core,omitempty"`

	// SkillScoreFloor/Ceil clamp the skill score into a realistic band so
	// extreme raw ratios never dominate the final number.
	SkillScoreFloor float64 `json:"skill_score_floor,omitempty"`
	SkillScoreCeil  float64 `json:"skill_score_ceil,omitempty"`

	// VagueBaseline is the fixed skill score used when the job description
	// yields fewer than VagueSignalMin matched+missing skills. Avoids
	// division instability on near-empty skill data.
	VagueBaseline  float64 `json:"vague_baseline,omitempty"`
	VagueSignalMin int     `json:"vague_signal_min,omitempty"`

	// DesignPenalty multiplies the compatibility factor when a pure design
	// role meets a technical resume profile.
	DesignPenalty float64 `json:"design_penalty,omitempty"`

	// MaxScore bounds the final percentage from above; the per-role floor
	// from the compatibility matrix bounds it from below.
	MaxScore int `json:"max_score,omitempty"`
}

// MergeWithDefaults returns a Policy with zero-valued fields filled from
// defaults, so a config file can override a subset of the tuning.
func (p Policy) MergeWithDefaults(defaults Policy) Policy {
	result := p

	if result.CoreWeight == 0 {
		result.CoreWeight = defaults.CoreWeight
	}
	if result.OverallWeight == 0 {
		result.OverallWeight = defaults.OverallWeight
	}
	if result.GapPenalty == 0 {
		result.GapPenalty = defaults.GapPenalty
	}
	if result.GapRatio == 0 {
		result.GapRatio = defaults.GapRatio
	}
	if result.BonusFactor == 0 {
		result.BonusFactor = defaults.BonusFactor
	}
	if result.BonusCoreRate == 0 {
		result.BonusCoreRate = defaults.BonusCoreRate
	}
	if result.BonusMinCore == 0 {
		result.BonusMinCore = defaults.BonusMinCore
	}
	if result.SkillScoreFloor == 0 {
		result.SkillScoreFloor = defaults.SkillScoreFloor
	}
	if result.SkillScoreCeil == 0 {
		result.SkillScoreCeil = defaults.SkillScoreCeil
	}
	if result.VagueBaseline == 0 {
		result.VagueBaseline = defaults.VagueBaseline
	}
	if result.VagueSignalMin == 0 {
		result.VagueSignalMin = defaults.VagueSignalMin
	}
	if result.DesignPenalty == 0 {
		result.DesignPenalty = defaults.DesignPenalty
	}
	if result.MaxScore == 0 {
		result.MaxScore = defaults.MaxScore
	}

	return result
}

// DefaultPolicy returns the canonical tuning.
func DefaultPolicy() Policy {
	return Policy{
		CoreWeight:      0.6,
		OverallWeight:   0.4,
		GapPenalty:      0.85,
		GapRatio:        2.0,
		BonusFactor:     1.15,
		BonusCoreRate:   0.95,
		BonusMinCore:    4,
		SkillScoreFloor: 0.12,
		SkillScoreCeil:  0.95,
		VagueBaseline:   0.25,
		VagueSignalMin:  3,
		DesignPenalty:   0.35,
		MaxScore:        95,
	}
}
