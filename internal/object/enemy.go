package object

// EnemyVariant identifies an enemy type.
type EnemyVariant int

const (
	EnemyBasic EnemyVariant = iota
	EnemyGrunt
)

// enemyStats holds the base stats of an enemy variant before difficulty scaling.
type enemyStats struct {
	width, height float64
	health        float64
	speed         float64
	fireRate      float64
	score         int
}

var enemyVariants = map[EnemyVariant]enemyStats{
	EnemyBasic: {width: 25, height: 25, health: 25, speed: 150, fireRate: 1, score: 100},
	EnemyGrunt: {width: 25, height: 25, health: 20, speed: 150, fireRate: 2, score: 100},
}

// Enemy is a hostile ship that drifts down the screen, bouncing sideways and
// firing at a fixed cadence.
type Enemy struct {
	Body
	Variant EnemyVariant

	Health    float64
	MaxHealth float64
	Speed     float64
	Score     int // Base points awarded on kill

	// Lateral is the accumulated sideways drift; it also acts as the
	// current horizontal velocity. Direction is its sign of growth.
	Lateral   float64
	Direction float64

	FireRate     float64
	fireCooldown float64

	pending []*Bullet
}

// NewEnemy creates an enemy of the given variant with its top-left at (x, y).
func NewEnemy(variant EnemyVariant, x, y float64) *Enemy {
	st, ok := enemyVariants[variant]
	if !ok {
		st = enemyVariants[EnemyBasic]
		variant = EnemyBasic
	}
	return &Enemy{
		Body:      NewBody(x, y, st.width, st.height),
		Variant:   variant,
		Health:    st.health,
		MaxHealth: st.health,
		Speed:     st.speed,
		Score:     st.score,
		Direction: 1,
		FireRate:  st.fireRate,
	}
}

// NewGrunt creates the basic spawned enemy.
func NewGrunt(x, y float64) *Enemy {
	return NewEnemy(EnemyGrunt, x, y)
}

// Kind returns KindEnemy.
func (e *Enemy) Kind() Kind {
	return KindEnemy
}

// Update drifts the enemy, retires it below the screen and fires.
func (e *Enemy) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	e.Lateral += e.Speed * e.Direction * dt

	// Flip when the drift would carry an edge outside the field.
	if e.X+e.Lateral < 0 || e.X+e.Lateral+e.Width > ctx.Screen.Width {
		e.Direction = -e.Direction
	}

	e.VX = e.Lateral
	e.VY = e.Speed * 0.5
	e.Integrate(dt)

	// Leaving through the bottom is not a kill.
	if e.Y > ctx.Screen.Height {
		e.Kill()
	}

	if e.fireCooldown > 0 {
		e.fireCooldown -= dt
	}
	if e.fireCooldown <= 0 {
		e.Shoot()
		e.fireCooldown = e.FireRate
	}
}

// Shoot queues one downward bullet centered under the enemy.
func (e *Enemy) Shoot() {
	x := e.X + e.Width/2 - EnemyBulletWidth/2
	y := e.Y + e.Height
	e.pending = append(e.pending, NewEnemyBullet(x, y))
}

// TakeBullets returns the bullets fired since the last call and clears the
// pending list.
func (e *Enemy) TakeBullets() []*Bullet {
	out := e.pending
	e.pending = nil
	return out
}

// TakeDamage subtracts health. The enemy dies at zero or below.
func (e *Enemy) TakeDamage(amount float64) {
	e.Health -= amount
	if e.Health <= 0 {
		e.Kill()
	}
}

// HealthFraction returns health as a fraction of MaxHealth, floored at zero.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 || e.Health <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
