package colony

// ActivityConstraint records how recently each grid pixel was claimed by an
// entity. A freshly claimed pixel starts at its kind's ceiling and the whole
// field decays by one per step, so normalized activity fades from 1 toward 0
// along an entity's trailing edge. It declares the renderer's activity
// capability.
type ActivityConstraint struct {
	max map[int]float64
	act []float64
}

// NewActivityConstraint allocates activity storage for total pixels with the
// given per-kind ceilings.
func NewActivityConstraint(total int, max map[int]float64) *ActivityConstraint {
	if total < 0 {
		total = 0
	}
	return &ActivityConstraint{max: max, act: make([]float64, total)}
}

// Name identifies the constraint in the registry.
func (a *ActivityConstraint) Name() string { return "activity" }

// Pxact returns the raw activity at a linear pixel index.
func (a *ActivityConstraint) Pxact(index int) float64 {
	if index < 0 || index >= len(a.act) {
		return 0
	}
	return a.act[index]
}

// MaxAct returns the activity ceiling configured for a kind.
func (a *ActivityConstraint) MaxAct(kind int) float64 { return a.max[kind] }

func (a *ActivityConstraint) bump(index, kind int) {
	if index < 0 || index >= len(a.act) {
		return
	}
	if m := a.max[kind]; m > 0 {
		a.act[index] = m
	}
}

func (a *ActivityConstraint) decay() {
	for i := range a.act {
		if a.act[i] > 0 {
			a.act[i]--
			if a.act[i] < 0 {
				a.act[i] = 0
			}
		}
	}
}

func (a *ActivityConstraint) reset() {
	for i := range a.act {
		a.act[i] = 0
	}
}
