package scoring

import "github.com/jonathan/resume-analyzer/internal/classify"

// matrixKey identifies one cell of the compatibility matrix.
type matrixKey struct {
	role    classify.RoleIntent
	profile classify.ResumeProfile
}

// Matrix maps every (role intent, resume profile) pair to a compatibility
// multiplier, plus a per-role minimum score. The multipliers encode how
// transferable a background is toward a role family: a technical resume
// transfers poorly into marketing work, a non-tech resume transfers poorly
// into engineering, and so on.
type Matrix struct {
	multipliers map[matrixKey]float64
	floors      map[classify.RoleIntent]int
}

// DefaultMatrix returns the canonical compatibility table.
func DefaultMatrix() *Matrix {
	return &Matrix{
		multipliers: map[matrixKey]float64{
			{classify.TechCore, classify.Technical}:          0.95,
			{classify.TechCore, classify.Mixed}:              0.70,
			{classify.TechCore, classify.ProfileNonTech}:     0.30,
			{classify.TechAdjacent, classify.Technical}:      0.52,
			{classify.TechAdjacent, classify.Mixed}:          0.75,
			{classify.TechAdjacent, classify.ProfileNonTech}: 0.50,
			{classify.RoleNonTech, classify.Technical}:       0.38,
			{classify.RoleNonTech, classify.Mixed}:           0.68,
			{classify.RoleNonTech, classify.ProfileNonTech}:  0.95,
		},
		floors: map[classify.RoleIntent]int{
			classify.TechCore:     20,
			classify.TechAdjacent: 15,
			classify.RoleNonTech:  10,
		},
	}
}

// Multiplier returns the compatibility factor for a role/profile pair.
func (m *Matrix) Multiplier(role classify.RoleIntent, profile classify.ResumeProfile) float64 {
	if v, ok := m.multipliers[matrixKey{role, profile}]; ok {
		return v
	}
	// Unknown pairs should not happen; score conservatively if one does.
	return 0.50
}

// Floor returns the minimum final score for a role category. Even a poor
// match carries some baseline transferable value.
func (m *Matrix) Floor(role classify.RoleIntent) int {
	if v, ok := m.floors[role]; ok {
		return v
	}
	return 10
}
