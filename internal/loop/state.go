package loop

import (
	"github.com/tomz197/skyshooter/internal/object"
)

// World holds every live entity in insertion order together with
// per-kind indices over the same entities. All insertion goes through Spawn
// and all removal through Compact, so the indices never drift from Objects.
type World struct {
	Objects []object.Entity
	Screen  object.Screen

	Player       *object.Player
	Enemies      []*object.Enemy
	Bullets      []*object.Bullet // Player-owned, straight and spread
	EnemyBullets []*object.Bullet
	PowerUps     []*object.PowerUp
	Particles    []*object.Particle
}

// NewWorld creates an empty world with the given play field.
func NewWorld(screen object.Screen) *World {
	return &World{
		Objects: []object.Entity{},
		Screen:  screen,
	}
}

// Spawn adds an entity to the world and files it under its kind.
// Implements object.Spawner.
func (w *World) Spawn(e object.Entity) {
	if e == nil {
		return
	}
	w.Objects = append(w.Objects, e)

	switch o := e.(type) {
	case *object.Player:
		w.Player = o
	case *object.Enemy:
		w.Enemies = append(w.Enemies, o)
	case *object.Bullet:
		if o.Kind() == object.KindEnemyBullet {
			w.EnemyBullets = append(w.EnemyBullets, o)
		} else {
			w.Bullets = append(w.Bullets, o)
		}
	case *object.PowerUp:
		w.PowerUps = append(w.PowerUps, o)
	case *object.Particle:
		w.Particles = append(w.Particles, o)
	}
}

// SpawnBullets adds bullets in order.
func (w *World) SpawnBullets(bullets []*object.Bullet) {
	for _, b := range bullets {
		w.Spawn(b)
	}
}

// LiveEnemies returns the number of enemies not marked dead.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.IsDead() {
			n++
		}
	}
	return n
}

// Compact removes dead entities from Objects and from every index,
// preserving the order of the survivors. The player pointer is kept so the
// final health stays readable after death.
func (w *World) Compact() {
	w.Objects = compact(w.Objects, func(e object.Entity) bool { return e.Base().IsDead() })
	w.Enemies = compact(w.Enemies, (*object.Enemy).IsDead)
	w.Bullets = compact(w.Bullets, (*object.Bullet).IsDead)
	w.EnemyBullets = compact(w.EnemyBullets, (*object.Bullet).IsDead)
	w.PowerUps = compact(w.PowerUps, (*object.PowerUp).IsDead)
	w.Particles = compact(w.Particles, (*object.Particle).IsDead)
}

// compact filters s in place and clears the tail so removed entities can be
// collected.
func compact[T any](s []T, dead func(T) bool) []T {
	kept := s[:0] // reuse backing array
	for _, v := range s {
		if !dead(v) {
			kept = append(kept, v)
		}
	}
	clear(s[len(kept):])
	return kept
}
