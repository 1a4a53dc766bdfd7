// internal/component/formation.go
package component

// Formation describes the next wave to spawn. Every spawned wave grows it by one row,
// one column and one round.
type Formation struct {
	Rows    int
	Cols    int
	CenterX float64
	CenterY float64
	Round   int
}

// DefaultFormation is the first wave of a fresh session.
func DefaultFormation() Formation {
	return Formation{
		Rows:    1,
		Cols:    4,
		CenterX: 0,
		CenterY: 250,
		Round:   1,
	}
}

// Reset puts the formation back to initial values.
func (f *Formation) Reset(initial Formation) {
	*f = initial
}

// Advance makes the next wave harder.
func (f *Formation) Advance() {
	f.Cols++
	f.Rows++
	f.Round++
}
