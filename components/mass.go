package components

// Mass holds an entity's current mass and the target it is growing toward.
// Food cells keep Value == Target forever; blobs raise Target by eating and
// close the gap gradually via Grow.
type Mass struct {
	Value  float32
	Target float32
}

// NewMass returns a mass at rest (no pending growth).
func NewMass(v float32) Mass {
	return Mass{Value: v, Target: v}
}

// Grow advances Value toward Target, closing the given fraction of the gap.
// Once Value reaches Target the update is idempotent; it never overshoots.
func (m *Mass) Grow(rate float32) {
	if m.Value < m.Target {
		m.Value += (m.Target - m.Value) * rate
	} else {
		m.Value = m.Target
	}
}

// Consume credits half of the victim's mass to the growth target. The gain
// is realized gradually by subsequent Grow calls, not instantaneously.
func (m *Mass) Consume(victim float32) {
	m.Target += victim / 2
}

// Growing reports whether the entity still has pending growth.
func (m *Mass) Growing() bool {
	return m.Value < m.Target
}
