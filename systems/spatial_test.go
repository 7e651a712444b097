package systems

import (
	"math/rand"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/petri/components"
)

func TestSpatialGridQueryMatchesBruteForce(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Cell](world)
	posMap := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(500, 500, 64)
	rng := rand.New(rand.NewSource(7))

	type placed struct {
		e ecs.Entity
		p components.Position
	}
	var all []placed

	for i := 0; i < 300; i++ {
		pos := components.Position{X: rng.Float32() * 500, Y: rng.Float32() * 500}
		cell := components.Cell{}
		e := mapper.NewEntity(&pos, &cell)
		grid.Insert(e, pos.X, pos.Y)
		all = append(all, placed{e: e, p: pos})
	}

	origin := components.Position{X: 250, Y: 250}
	const radius = 80

	want := make(map[ecs.Entity]bool)
	for _, pl := range all {
		if DistanceSq(origin, pl.p) <= radius*radius {
			want[pl.e] = true
		}
	}

	got := grid.QueryRadiusInto(nil, origin.X, origin.Y, radius, posMap)
	if len(got) != len(want) {
		t.Fatalf("query returned %d entities, brute force found %d", len(got), len(want))
	}
	for _, n := range got {
		if !want[n.E] {
			t.Errorf("query returned entity outside radius (distSq %f)", n.DistSq)
		}
	}
}

func TestSpatialGridRemove(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Cell](world)
	posMap := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(200, 200, 64)

	pos := components.Position{X: 100, Y: 100}
	cell := components.Cell{}
	e := mapper.NewEntity(&pos, &cell)
	grid.Insert(e, pos.X, pos.Y)

	if got := grid.QueryRadiusInto(nil, 100, 100, 10, posMap); len(got) != 1 {
		t.Fatalf("expected 1 entity before removal, got %d", len(got))
	}

	grid.Remove(e, pos.X, pos.Y)

	if got := grid.QueryRadiusInto(nil, 100, 100, 10, posMap); len(got) != 0 {
		t.Errorf("expected no entities after removal, got %d", len(got))
	}

	// Removing again is a no-op
	grid.Remove(e, pos.X, pos.Y)
}

func TestSpatialGridEdgePositions(t *testing.T) {
	world := ecs.NewWorld()
	mapper := ecs.NewMap2[components.Position, components.Cell](world)
	posMap := ecs.NewMap1[components.Position](world)

	grid := NewSpatialGrid(100, 100, 64)

	// Corners and edges must be indexable and findable
	corners := []components.Position{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}, {X: 100, Y: 100},
	}
	for _, c := range corners {
		pos := c
		cell := components.Cell{}
		e := mapper.NewEntity(&pos, &cell)
		grid.Insert(e, pos.X, pos.Y)
	}

	got := grid.QueryRadiusInto(nil, 50, 50, 80, posMap)
	if len(got) != 4 {
		t.Errorf("expected all 4 corner entities within radius 80 of center, got %d", len(got))
	}
}
