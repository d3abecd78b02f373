package loop

import (
	"github.com/tomz197/skyshooter/internal/loop/config"
	"github.com/tomz197/skyshooter/internal/object"
	"github.com/tomz197/skyshooter/internal/physics"
)

// collisionHooks receives the outcomes of collision resolution that reach
// beyond the two entities involved.
type collisionHooks struct {
	enemyKilled      func(e *object.Enemy)
	powerUpCollected func(p *object.PowerUp)
}

// resolver runs the per-frame collision passes. The enemy grid is reused
// between frames.
type resolver struct {
	enemyGrid *physics.SpatialGrid
}

func newResolver(screen object.Screen) *resolver {
	return &resolver{
		enemyGrid: physics.NewSpatialGrid(screen.Width, screen.Height, config.CollisionGridCellSize),
	}
}

// resolve runs the passes in their fixed order. Passes involving the player
// are skipped when there is no live player at the start of the pass.
func (r *resolver) resolve(w *World, hooks collisionHooks) {
	r.bulletsVsEnemies(w.Bullets, w.Enemies, hooks.enemyKilled)

	p := w.Player
	if playerAlive(p) {
		enemyBulletsVsPlayer(p, w.EnemyBullets)
	}
	if playerAlive(p) {
		enemiesVsPlayer(p, w.Enemies)
	}
	if playerAlive(p) {
		powerUpsVsPlayer(p, w.PowerUps, hooks.powerUpCollected)
	}
}

func playerAlive(p *object.Player) bool {
	return p != nil && !p.IsDead()
}

// bulletsVsEnemies lets each live player bullet hit at most one enemy: the
// first overlapping live enemy in list order.
func (r *resolver) bulletsVsEnemies(bullets []*object.Bullet, enemies []*object.Enemy, killed func(*object.Enemy)) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return
	}

	r.enemyGrid.Clear()
	for i, e := range enemies {
		if !e.IsDead() {
			r.enemyGrid.Insert(e.X, e.Y, i)
		}
	}

	for _, b := range bullets {
		if b.IsDead() {
			continue
		}

		// The grid does not visit in insertion order, so keep the lowest
		// index that overlaps.
		hit := -1
		r.enemyGrid.QueryAround(b.X, b.Y, func(i int) bool {
			e := enemies[i]
			if (hit < 0 || i < hit) && !e.IsDead() && b.CollidesWith(&e.Body) {
				hit = i
			}
			return false
		})
		if hit < 0 {
			continue
		}

		e := enemies[hit]
		e.TakeDamage(b.Damage)
		b.Kill()
		if e.IsDead() && killed != nil {
			killed(e)
		}
	}
}

// enemyBulletsVsPlayer applies every overlapping enemy bullet to the player.
func enemyBulletsVsPlayer(p *object.Player, bullets []*object.Bullet) {
	for _, b := range bullets {
		if b.IsDead() || !b.CollidesWith(&p.Body) {
			continue
		}
		p.TakeDamage(b.Damage)
		b.Kill()
	}
}

// enemiesVsPlayer applies contact damage for every overlapping enemy and
// destroys the enemy without awarding score.
func enemiesVsPlayer(p *object.Player, enemies []*object.Enemy) {
	for _, e := range enemies {
		if e.IsDead() || !e.CollidesWith(&p.Body) {
			continue
		}
		p.TakeDamage(config.ContactDamage)
		e.Kill()
	}
}

// powerUpsVsPlayer applies and removes every overlapping power-up.
func powerUpsVsPlayer(p *object.Player, powerUps []*object.PowerUp, collected func(*object.PowerUp)) {
	for _, pu := range powerUps {
		if pu.IsDead() || !pu.CollidesWith(&p.Body) {
			continue
		}
		pu.Apply(p)
		pu.Kill()
		if collected != nil {
			collected(pu)
		}
	}
}
