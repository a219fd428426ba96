package system

import (
	"github.com/lixenwraith/teapong/component"
	"github.com/lixenwraith/teapong/vmath"
)

// Rand is the randomness the simulation consumes, satisfied by *rand.Rand from math/rand/v2
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// PowerUpConfig is the spawn and pickup tuning
type PowerUpConfig struct {
	SpawnChance  float64
	MaxLive      int
	PickupRadius float64
	SpawnHalfY   float64
	SpawnHalfZ   float64
	SpinPerTick  float64
}

// PowerUps owns the live collectibles
// Invariant: len(live) <= MaxLive
type PowerUps struct {
	cfg    PowerUpConfig
	live   []component.PowerUp
	nextID component.PowerUpID
}

func NewPowerUps(cfg PowerUpConfig) *PowerUps {
	return &PowerUps{
		cfg:    cfg,
		live:   make([]component.PowerUp, 0, cfg.MaxLive),
		nextID: 1,
	}
}

// TrySpawn rolls the per-tick spawn chance and places a uniformly chosen kind on the x=0 plane
// The cap is checked before the roll so a full set consumes no randomness
func (m *PowerUps) TrySpawn(rng Rand) (component.PowerUp, bool) {
	if len(m.live) >= m.cfg.MaxLive {
		return component.PowerUp{}, false
	}
	if rng.Float64() >= m.cfg.SpawnChance {
		return component.PowerUp{}, false
	}

	p := component.PowerUp{
		ID:   m.nextID,
		Kind: component.PowerUpKind(rng.IntN(int(component.PowerUpKindCount))),
		Position: vmath.Vec3{
			X: 0,
			Y: (rng.Float64()*2 - 1) * m.cfg.SpawnHalfY,
			Z: (rng.Float64()*2 - 1) * m.cfg.SpawnHalfZ,
		},
	}
	m.nextID++
	m.live = append(m.live, p)
	return p, true
}

// Collect removes and returns every live power-up closer than the pickup radius to pos
func (m *PowerUps) Collect(pos vmath.Vec3) []component.PowerUp {
	var taken []component.PowerUp
	kept := m.live[:0]
	for _, p := range m.live {
		if vmath.V3Dist(pos, p.Position) < m.cfg.PickupRadius {
			taken = append(taken, p)
			continue
		}
		kept = append(kept, p)
	}
	m.live = kept
	return taken
}

// Spin advances the cosmetic rotation of every live power-up
func (m *PowerUps) Spin() {
	for i := range m.live {
		m.live[i].Spin += m.cfg.SpinPerTick
	}
}

// Live returns a copy of the live power-ups
func (m *PowerUps) Live() []component.PowerUp {
	out := make([]component.PowerUp, len(m.live))
	copy(out, m.live)
	return out
}

func (m *PowerUps) Len() int {
	return len(m.live)
}

// Clear drops every live power-up, ids keep increasing
func (m *PowerUps) Clear() {
	m.live = m.live[:0]
}
