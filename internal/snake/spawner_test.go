package snake

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnTargetAvoidsOccupied(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	occupied := map[Cell]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
		{X: 2, Y: 2}: {},
	}

	for i := 0; i < 500; i++ {
		c, err := SpawnTarget(rng, 3, occupied)
		if err != nil {
			t.Fatalf("SpawnTarget: %v", err)
		}
		if _, taken := occupied[c]; taken {
			t.Fatalf("spawned on occupied cell %v", c)
		}
		if c.X < 0 || c.X >= 3 || c.Y < 0 || c.Y >= 3 {
			t.Fatalf("spawned outside grid: %v", c)
		}
	}
}

func TestSpawnTargetCoversAllFreeCells(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	occupied := map[Cell]struct{}{{X: 1, Y: 1}: {}}

	seen := make(map[Cell]int)
	for i := 0; i < 2000; i++ {
		c, err := SpawnTarget(rng, 3, occupied)
		if err != nil {
			t.Fatalf("SpawnTarget: %v", err)
		}
		seen[c]++
	}

	// 8 free cells; after 2000 uniform draws every one should appear.
	if len(seen) != 8 {
		t.Errorf("only %d of 8 free cells ever chosen: %v", len(seen), seen)
	}
	for c, n := range seen {
		if n < 100 {
			t.Errorf("cell %v chosen %d times, suspiciously non-uniform", c, n)
		}
	}
}

func TestSpawnTargetSingleFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	occupied := map[Cell]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
		{X: 0, Y: 1}: {},
	}
	c, err := SpawnTarget(rng, 2, occupied)
	if err != nil {
		t.Fatalf("SpawnTarget: %v", err)
	}
	if c != (Cell{X: 1, Y: 1}) {
		t.Errorf("spawned %v, want the only free cell (1,1)", c)
	}
}

func TestSpawnTargetExhaustedGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	occupied := map[Cell]struct{}{
		{X: 0, Y: 0}: {},
		{X: 1, Y: 0}: {},
		{X: 0, Y: 1}: {},
		{X: 1, Y: 1}: {},
	}
	if _, err := SpawnTarget(rng, 2, occupied); !errors.Is(err, ErrExhaustedGrid) {
		t.Errorf("error = %v, want ErrExhaustedGrid", err)
	}
}

func TestSpawnTargetSeedDeterminism(t *testing.T) {
	occupied := map[Cell]struct{}{{X: 2, Y: 3}: {}}

	draw := func() []Cell {
		rng := rand.New(rand.NewSource(21))
		out := make([]Cell, 10)
		for i := range out {
			c, err := SpawnTarget(rng, 20, occupied)
			if err != nil {
				t.Fatalf("SpawnTarget: %v", err)
			}
			out[i] = c
		}
		return out
	}

	a, b := draw(), draw()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d diverged: %v vs %v", i, a[i], b[i])
		}
	}
}
