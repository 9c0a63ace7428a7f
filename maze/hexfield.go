package maze

import (
	"math/rand"

	"github.com/lixenwraith/pathviz/grid"
)

// HexField is the fixed demo layout: a radius-bounded hexagonal field
// with a vertical obstacle wall at q=3 spanning r in [-5, 5], plus two
// stray obstacles. Radii below 6 just shrink the wall with the field.
func HexField(radius int) grid.HexMap {
	m := grid.NewHexagon(radius)
	for r := -5; r <= 5; r++ {
		c := grid.Axial{Q: 3, R: r}
		if _, ok := m[c]; ok {
			m.Set(c, 1)
		}
	}
	block(m, grid.Axial{Q: 4, R: -5})
	block(m, grid.Axial{Q: 2, R: 5})
	return m
}

// RandomHexField scatters obstacles over a radius-bounded field at the
// given density, leaving the keep cells walkable. Density is clamped to
// [0, 1]; the same seed reproduces the same field.
func RandomHexField(radius int, density float64, seed int64, keep ...grid.Axial) grid.HexMap {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	rng := rand.New(rand.NewSource(seed))

	m := grid.NewHexagon(radius)
	// Deterministic iteration: sweep the bounding rhombus, not the map.
	for q := -radius; q <= radius; q++ {
		for r := -radius; r <= radius; r++ {
			c := grid.Axial{Q: q, R: r}
			if _, ok := m[c]; !ok {
				continue
			}
			if rng.Float64() < density {
				m.Set(c, 1)
			}
		}
	}
	for _, c := range keep {
		if _, ok := m[c]; ok {
			m.Set(c, 0)
		}
	}
	return m
}

func block(m grid.HexMap, c grid.Axial) {
	if _, ok := m[c]; ok {
		m.Set(c, 1)
	}
}
