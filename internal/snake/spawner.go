package snake

import (
	"errors"
	"math/rand"
)

// ErrExhaustedGrid is returned by SpawnTarget when every cell is occupied.
var ErrExhaustedGrid = errors.New("snake: no free cell left on the grid")

// SpawnTarget picks a uniformly random free cell on a gridSize x gridSize
// grid. It samples directly from the complement of the occupied set, so it
// terminates even when the grid is nearly full; a fully occupied grid returns
// ErrExhaustedGrid. rng must not be nil.
func SpawnTarget(rng *rand.Rand, gridSize int, occupied map[Cell]struct{}) (Cell, error) {
	room := gridSize*gridSize - len(occupied)
	if room < 0 {
		room = 0
	}
	free := make([]Cell, 0, room)
	for y := 0; y < gridSize; y++ {
		for x := 0; x < gridSize; x++ {
			c := Cell{X: x, Y: y}
			if _, taken := occupied[c]; !taken {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		return Cell{}, ErrExhaustedGrid
	}
	return free[rng.Intn(len(free))], nil
}
