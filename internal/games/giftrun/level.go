package giftrun

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"

	"github.com/vovakirdan/giftrun/internal/config"
	"github.com/vovakirdan/giftrun/internal/core"
)

// Spot is a grid cell position.
type Spot struct {
	X, Y int
}

// Floor is the set of standing spots sharing one row.
type Floor struct {
	Y     int
	Spots []Spot
}

// FloorLevels groups every standing spot by row, lowest row first.
func FloorLevels(g *Grid) []Floor {
	var floors []Floor
	for y := 1; y < g.H; y++ {
		var spots []Spot
		for x := 0; x < g.W; x++ {
			if g.IsStandingSpot(x, y) {
				spots = append(spots, Spot{X: x, Y: y})
			}
		}
		if len(spots) > 0 {
			floors = append(floors, Floor{Y: y, Spots: spots})
		}
	}
	return floors
}

// ReachableFloors drops the highest floor when more than one exists.
// This is a heuristic: the top floor is assumed to need traversal the
// generator does not model.
func ReachableFloors(floors []Floor) []Floor {
	if len(floors) <= 1 {
		return floors
	}
	top := 0
	for i, f := range floors {
		if f.Y > floors[top].Y {
			top = i
		}
	}
	out := make([]Floor, 0, len(floors)-1)
	out = append(out, floors[:top]...)
	return append(out, floors[top+1:]...)
}

// LevelSummary describes a generated level.
type LevelSummary struct {
	Solids    int
	Ladders   int
	Enemies   int
	Gifts     int
	Trees     int
	Floors    int
	Reachable int
}

// Generator builds levels from a template.
type Generator struct {
	grid *Grid
	cfg  config.GameConfig
	rng  *rand.Rand
	log  *log.Logger
}

// NewGenerator validates the template and returns a generator for it.
func NewGenerator(grid *Grid, cfg config.GameConfig, rng *rand.Rand, logger *log.Logger) (*Generator, error) {
	players := 0
	grid.Each(func(_, _ int, c byte) {
		if c == CellPlayer {
			players++
		}
	})
	switch {
	case players == 0:
		return nil, ErrNoPlayerSpawn
	case players > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultiplePlayerSpawns, players)
	}
	if len(ReachableFloors(FloorLevels(grid))) == 0 {
		return nil, ErrNoReachableFloor
	}

	return &Generator{grid: grid, cfg: cfg, rng: rng, log: logger}, nil
}

// Grid returns the template the generator reads.
func (gen *Generator) Grid() *Grid {
	return gen.grid
}

// Populate clears the store and fills it with a freshly generated level.
func (gen *Generator) Populate(store *Store) LevelSummary {
	store.Clear()
	tile := gen.cfg.World.TileSize

	// Static geometry, in scan order
	gen.grid.Each(func(x, y int, c byte) {
		switch c {
		case CellSolid:
			store.Solids = append(store.Solids, gen.tileRect(x, y))
		case CellLadder:
			lw := gen.cfg.Entities.LadderWidth
			store.Ladders = append(store.Ladders, core.NewRect(
				float64(x)*tile+(tile-lw)/2, float64(y)*tile, lw, tile))
		}
	})

	// Spawns
	enemies := 0
	gen.grid.Each(func(x, y int, c byte) {
		switch c {
		case CellPlayer:
			store.Add(&Entity{Kind: KindPlayer, Rect: gen.actorRect(x, y)})
		case CellReindeer:
			store.Add(&Entity{Kind: KindReindeer, Rect: gen.actorRect(x, y)})
			enemies++
		case CellSnowman:
			store.Add(&Entity{Kind: KindSnowman, Rect: gen.actorRect(x, y)})
			enemies++
		}
	})

	floors := FloorLevels(gen.grid)
	reachable := ReachableFloors(floors)
	occupied := mapset.New[Spot]()

	gifts := gen.placeGifts(store, reachable, occupied)
	trees := gen.placeTrees(store, floors, occupied)

	summary := LevelSummary{
		Solids:    len(store.Solids),
		Ladders:   len(store.Ladders),
		Enemies:   enemies,
		Gifts:     gifts,
		Trees:     trees,
		Floors:    len(floors),
		Reachable: len(reachable),
	}
	gen.log.Debug("level generated",
		"gifts", summary.Gifts,
		"trees", summary.Trees,
		"enemies", summary.Enemies,
		"floors", summary.Floors,
		"reachable", summary.Reachable)
	return summary
}

// placeGifts puts at most one gift per floor first, then fills the
// remaining target from any free reachable spot.
func (gen *Generator) placeGifts(store *Store, floors []Floor, occupied mapset.Set[Spot]) int {
	gc := gen.cfg.Generation
	target := gc.GiftsMin + gen.rng.Intn(gc.GiftsMax-gc.GiftsMin+1)
	placed := 0

	place := func(s Spot) {
		store.Add(&Entity{
			Kind:    KindGift,
			Rect:    gen.giftRect(s.X, s.Y),
			Variant: gen.rng.Intn(gc.GiftVariants),
		})
		occupied.Put(s)
		placed++
	}

	for _, i := range gen.rng.Perm(len(floors)) {
		if placed >= target {
			break
		}
		spots := floors[i].Spots
		place(spots[gen.rng.Intn(len(spots))])
	}

	if placed < target {
		var candidates []Spot
		for _, f := range floors {
			for _, s := range f.Spots {
				if !occupied.Has(s) {
					candidates = append(candidates, s)
				}
			}
		}
		for placed < target && len(candidates) > 0 {
			i := gen.rng.Intn(len(candidates))
			s := candidates[i]
			candidates[i] = candidates[len(candidates)-1]
			candidates = candidates[:len(candidates)-1]
			place(s)
		}
	}

	return placed
}

// placeTrees decorates every floor, capped per floor.
func (gen *Generator) placeTrees(store *Store, floors []Floor, occupied mapset.Set[Spot]) int {
	gc := gen.cfg.Generation
	total := 0

	for _, f := range floors {
		var candidates []Spot
		for _, s := range f.Spots {
			if !occupied.Has(s) && !gen.grid.IsSpawn(s.X, s.Y) {
				candidates = append(candidates, s)
			}
		}
		gen.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		onFloor := 0
		for _, s := range candidates {
			if onFloor >= gc.TreesPerFloor {
				break
			}
			if gen.rng.Float64() >= gc.TreeChance {
				continue
			}
			store.Add(&Entity{
				Kind:    KindTree,
				Rect:    gen.tileRect(s.X, s.Y),
				Variant: gen.rng.Intn(gc.TreeVariants),
			})
			occupied.Put(s)
			onFloor++
		}
		total += onFloor
	}
	return total
}

func (gen *Generator) tileRect(x, y int) core.Rect {
	t := gen.cfg.World.TileSize
	return core.NewRect(float64(x)*t, float64(y)*t, t, t)
}

func (gen *Generator) actorRect(x, y int) core.Rect {
	t := gen.cfg.World.TileSize
	w, h := gen.cfg.Entities.ActorWidth, gen.cfg.Entities.ActorHeight
	return core.NewRect(float64(x)*t+(t-w)/2, float64(y)*t, w, h)
}

func (gen *Generator) giftRect(x, y int) core.Rect {
	t := gen.cfg.World.TileSize
	s := gen.cfg.Entities.GiftSize
	return core.NewRect(float64(x)*t+(t-s)/2, float64(y)*t, s, s)
}
