package object

// BulletVariant distinguishes the projectile types.
type BulletVariant int

const (
	BulletStraight BulletVariant = iota // Player, straight up
	BulletSpread                        // Player, angled
	BulletEnemy                         // Enemy, straight down
)

// Projectile tuning.
const (
	BulletDamage = 10.0

	PlayerBulletWidth  = 4.0
	PlayerBulletHeight = 10.0
	PlayerBulletSpeed  = 500.0 // Upward

	SpreadBulletSpeedX = 100.0 // Horizontal speed magnitude of angled shots

	EnemyBulletWidth  = 4.0
	EnemyBulletHeight = 8.0
	EnemyBulletSpeed  = 300.0 // Downward
)

// Bullet is a projectile. The variant decides its owner and size.
type Bullet struct {
	Body
	Variant BulletVariant
	Damage  float64
}

// NewBullet creates a straight player bullet with its top-left at (x, y).
func NewBullet(x, y float64) *Bullet {
	b := &Bullet{
		Body:    NewBody(x, y, PlayerBulletWidth, PlayerBulletHeight),
		Variant: BulletStraight,
		Damage:  BulletDamage,
	}
	b.VY = -PlayerBulletSpeed
	return b
}

// NewSpreadBullet creates an angled player bullet moving vx px/s sideways.
func NewSpreadBullet(x, y, vx float64) *Bullet {
	b := NewBullet(x, y)
	b.Variant = BulletSpread
	b.VX = vx
	return b
}

// NewEnemyBullet creates a downward enemy bullet with its top-left at (x, y).
func NewEnemyBullet(x, y float64) *Bullet {
	b := &Bullet{
		Body:    NewBody(x, y, EnemyBulletWidth, EnemyBulletHeight),
		Variant: BulletEnemy,
		Damage:  BulletDamage,
	}
	b.VY = EnemyBulletSpeed
	return b
}

// Kind returns KindEnemyBullet for enemy shots and KindBullet otherwise.
func (b *Bullet) Kind() Kind {
	if b.Variant == BulletEnemy {
		return KindEnemyBullet
	}
	return KindBullet
}

// Update moves the bullet.
func (b *Bullet) Update(ctx UpdateContext) {
	b.Integrate(ctx.Delta.Seconds())
}

// IsOffScreen reports whether the bullet has left the play field.
// Player bullets leave through the top (spread shots also through the
// sides), enemy bullets through the bottom.
func (b *Bullet) IsOffScreen(screen Screen) bool {
	switch b.Variant {
	case BulletEnemy:
		return b.Y > screen.Height
	case BulletSpread:
		return b.Y+b.Height < 0 || b.X+b.Width < 0 || b.X > screen.Width
	default:
		return b.Y+b.Height < 0
	}
}
