package giftrun

import (
	"github.com/vovakirdan/giftrun/internal/core"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindReindeer
	KindSnowman
	KindGift
	KindTree
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindReindeer:
		return "reindeer"
	case KindSnowman:
		return "snowman"
	case KindGift:
		return "gift"
	case KindTree:
		return "tree"
	default:
		return "unknown"
	}
}

// IsEnemy reports whether contact with this kind damages the player.
func (k Kind) IsEnemy() bool {
	return k == KindReindeer || k == KindSnowman
}

// Simulated reports whether the kind moves under physics.
func (k Kind) Simulated() bool {
	return k == KindPlayer || k.IsEnemy()
}

// Entity is a single simulated actor or placed object.
type Entity struct {
	ID   int
	Kind Kind
	Rect core.Rect

	VX, VY   float64
	Grounded bool
	OnLadder bool
	Dir      int // -1 facing left, +1 facing right

	Variant int // gift or tree visual variant

	// Animation
	Anim       PlayerAnim
	Frame      int
	FrameTimer float64
}

// Store holds every entity of the current level plus its static geometry.
// Entities keep insertion order; IDs are never reused.
type Store struct {
	entities []*Entity
	byID     map[int]*Entity
	nextID   int
	player   *Entity

	Solids  []core.Rect
	Ladders []core.Rect
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{byID: make(map[int]*Entity), nextID: 1}
}

// Add assigns the entity a fresh ID and appends it.
func (s *Store) Add(e *Entity) *Entity {
	e.ID = s.nextID
	s.nextID++
	if e.Dir == 0 {
		e.Dir = 1
	}
	s.entities = append(s.entities, e)
	s.byID[e.ID] = e
	if e.Kind == KindPlayer {
		s.player = e
	}
	return e
}

// Remove deletes the entity with the given ID. It returns false if absent.
func (s *Store) Remove(id int) bool {
	e, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	for i, other := range s.entities {
		if other == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
	if s.player == e {
		s.player = nil
	}
	return true
}

// Get returns the entity with the given ID, or nil.
func (s *Store) Get(id int) *Entity {
	return s.byID[id]
}

// Player returns the player entity, or nil before the first level exists.
func (s *Store) Player() *Entity {
	return s.player
}

// Entities returns the live entities in insertion order.
// The slice must not be modified.
func (s *Store) Entities() []*Entity {
	return s.entities
}

// IDs returns a snapshot of live entity IDs in insertion order.
func (s *Store) IDs() []int {
	ids := make([]int, len(s.entities))
	for i, e := range s.entities {
		ids[i] = e.ID
	}
	return ids
}

// Len returns the number of live entities.
func (s *Store) Len() int {
	return len(s.entities)
}

// Count returns the number of live entities of the given kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Clear removes all entities and static geometry. IDs keep counting up.
func (s *Store) Clear() {
	s.entities = nil
	s.byID = make(map[int]*Entity)
	s.player = nil
	s.Solids = nil
	s.Ladders = nil
}
