package object

// Player tuning.
const (
	PlayerWidth     = 30.0
	PlayerHeight    = 40.0
	PlayerMaxHealth = 100.0
	PlayerSpeed     = 300.0 // px/s along each held axis

	PlayerFireRate      = 0.1  // Seconds between shots
	PlayerRapidFireRate = 0.05 // Seconds between shots with rapid fire

	muzzleOffset = 5.0 // Bullets spawn this far above the player's top edge
)

// Effect is a timed power-up effect on the player.
type Effect struct {
	Active    bool
	Remaining float64 // Seconds
}

// Arm activates the effect for duration seconds, replacing any time left.
func (e *Effect) Arm(duration float64) {
	e.Active = true
	e.Remaining = duration
}

// Tick counts the effect down and deactivates it once it runs out.
func (e *Effect) Tick(dt float64) {
	if !e.Active {
		return
	}
	e.Remaining -= dt
	if e.Remaining <= 0 {
		e.Active = false
	}
}

// Player is the player-controlled ship. It moves with the held direction
// keys and fires automatically.
type Player struct {
	Body

	Health    float64
	MaxHealth float64
	Speed     float64

	FireRate     float64 // Seconds between shots without rapid fire
	fireCooldown float64 // Time until next shot

	SpreadShot     Effect
	RapidFire      Effect
	Shield         Effect // Cosmetic: drawn by the renderer, does not block damage
	PiercingRounds Effect // Cosmetic: bullets still stop at the first enemy

	pending []*Bullet // Bullets fired this frame, harvested by the world
}

// NewPlayer creates a player with its top-left at (x, y).
func NewPlayer(x, y float64) *Player {
	return &Player{
		Body:      NewBody(x, y, PlayerWidth, PlayerHeight),
		Health:    PlayerMaxHealth,
		MaxHealth: PlayerMaxHealth,
		Speed:     PlayerSpeed,
		FireRate:  PlayerFireRate,
	}
}

// Kind returns KindPlayer.
func (p *Player) Kind() Kind {
	return KindPlayer
}

// Update moves the player, counts down effects and auto-fires.
func (p *Player) Update(ctx UpdateContext) {
	dt := ctx.Delta.Seconds()

	// Later directions overwrite earlier ones: right beats left, down beats
	// up. Diagonals are not normalized.
	dir := ctx.Input.Movement()
	p.VX = 0
	p.VY = 0
	if dir.Left {
		p.VX = -p.Speed
	}
	if dir.Right {
		p.VX = p.Speed
	}
	if dir.Up {
		p.VY = -p.Speed
	}
	if dir.Down {
		p.VY = p.Speed
	}

	p.Integrate(dt)
	p.clamp(ctx.Screen)

	p.SpreadShot.Tick(dt)
	p.RapidFire.Tick(dt)
	p.Shield.Tick(dt)
	p.PiercingRounds.Tick(dt)

	if p.fireCooldown > 0 {
		p.fireCooldown -= dt
	}
	if p.fireCooldown <= 0 {
		p.Shoot()
		p.fireCooldown = p.FireRate
		if p.RapidFire.Active {
			p.fireCooldown = PlayerRapidFireRate
		}
	}
}

// clamp keeps the player inside the play field.
func (p *Player) clamp(screen Screen) {
	if p.X < 0 {
		p.X = 0
	}
	if p.X+p.Width > screen.Width {
		p.X = screen.Width - p.Width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y+p.Height > screen.Height {
		p.Y = screen.Height - p.Height
	}
}

// Shoot queues one straight bullet, or three with spread shot active.
// All bullets start horizontally centered just above the player.
func (p *Player) Shoot() {
	x := p.X + p.Width/2 - PlayerBulletWidth/2
	y := p.Y - muzzleOffset

	p.pending = append(p.pending, NewBullet(x, y))
	if p.SpreadShot.Active {
		p.pending = append(p.pending,
			NewSpreadBullet(x, y, -SpreadBulletSpeedX),
			NewSpreadBullet(x, y, SpreadBulletSpeedX),
		)
	}
}

// TakeBullets returns the bullets fired since the last call and clears the
// pending list.
func (p *Player) TakeBullets() []*Bullet {
	out := p.pending
	p.pending = nil
	return out
}

// TakeDamage subtracts health, never below zero. The player dies at zero.
func (p *Player) TakeDamage(amount float64) {
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	if p.Health <= 0 {
		p.Kill()
	}
}

// Heal adds health, never above MaxHealth.
func (p *Player) Heal(amount float64) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// HealthFraction returns health as a fraction of MaxHealth.
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return p.Health / p.MaxHealth
}
