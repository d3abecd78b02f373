// Package loop runs the simulation: the per-frame orchestrator, collision
// resolution, and the fixed-rate driver shared by the frontends.
package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/tomz197/skyshooter/internal/input"
	"github.com/tomz197/skyshooter/internal/loop/config"
	"github.com/tomz197/skyshooter/internal/object"
	"github.com/tomz197/skyshooter/internal/scoring"
)

// Options configures a Game.
type Options struct {
	// Screen is the play field. Zero means config.WorldWidth x config.WorldHeight.
	Screen object.Screen

	// Seed drives every gameplay random draw. Zero picks a time-based seed,
	// which is then reused by every Restart.
	Seed int64

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// Game owns one play session: the world, the spawners, the scoring system
// and the random sources. It is not safe for concurrent use.
type Game struct {
	screen object.Screen
	seed   int64
	base   *log.Logger
	logger *log.Logger

	session string
	world   *World
	score   *scoring.System
	enemies *object.EnemySpawner
	powerUp *object.PowerUpSpawner
	rng     *rand.Rand // Gameplay draws: spawn positions, power-up types
	fxRng   *rand.Rand // Cosmetic draws: particles
	resolve *resolver

	running bool
	over    bool

	finalScore int
	bombs      int
	elapsed    time.Duration
}

// New creates a game and starts its first session.
func New(opts Options) *Game {
	screen := opts.Screen
	if screen.Width <= 0 || screen.Height <= 0 {
		screen = object.Screen{Width: config.WorldWidth, Height: config.WorldHeight}
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		screen:  screen,
		seed:    seed,
		base:    logger,
		running: true,
	}
	g.reset()
	g.logger.Info("session started", "seed", seed, "width", screen.Width, "height", screen.Height)
	return g
}

// reset discards all session state and builds a fresh one.
func (g *Game) reset() {
	g.session = uuid.NewString()
	g.logger = g.base.With("session", g.session)

	g.world = NewWorld(g.screen)
	g.score = scoring.New()
	g.enemies = object.NewEnemySpawner()
	g.powerUp = object.NewPowerUpSpawner()
	g.rng = rand.New(rand.NewSource(g.seed))
	g.fxRng = rand.New(rand.NewSource(g.seed + 1))
	g.resolve = newResolver(g.screen)

	g.over = false
	g.finalScore = 0
	g.bombs = 0
	g.elapsed = 0

	g.world.Spawn(object.NewPlayer(
		g.screen.Width/2-config.PlayerSpawnOffsetX,
		g.screen.Height-config.PlayerSpawnOffsetY,
	))
}

// Restart discards the current session and starts a new one with the same
// seed, so two restarts in a row produce identical state.
func (g *Game) Restart() {
	prev := g.score.Score()
	g.reset()
	g.logger.Info("session restarted", "previousScore", prev)
}

// Stop halts the session. Further updates are ignored.
func (g *Game) Stop() {
	if !g.running {
		return
	}
	g.running = false
	g.logger.Info("session stopped", "score", g.score.Score(), "elapsed", g.elapsed.Round(time.Millisecond))
}

// Running reports whether the session has not been stopped.
func (g *Game) Running() bool { return g.running }

// Over reports whether the player has died. The session stays frozen until
// Restart.
func (g *Game) Over() bool { return g.over }

// FinalScore returns the score at the moment of game over.
func (g *Game) FinalScore() int { return g.finalScore }

// Session returns the id of the current session.
func (g *Game) Session() string { return g.session }

// Screen returns the play field.
func (g *Game) Screen() object.Screen { return g.screen }

// World returns the live world. Callers must treat it as read-only.
func (g *Game) World() *World { return g.world }

// Entities returns the live entities in insertion order for rendering.
func (g *Game) Entities() []object.Entity { return g.world.Objects }

// Player returns the player ship. It is never nil, even after death.
func (g *Game) Player() *object.Player { return g.world.Player }

// Update advances the session by delta using the current key state, then
// clears the state's per-frame edges. delta is clamped to
// config.MaxFrameDelta. Nothing advances once the game is over or stopped.
func (g *Game) Update(delta time.Duration, st *input.State) {
	var snap input.Snapshot
	if st != nil {
		snap = st.Snapshot()
		st.ClearFrame()
	}
	g.Step(delta, snap)
}

// Step advances the session by one frame using a frozen input snapshot.
func (g *Game) Step(delta time.Duration, snap input.Snapshot) {
	if !g.running || g.over {
		return
	}
	delta = min(max(delta, 0), config.MaxFrameDelta)

	w := g.world
	ctx := object.UpdateContext{Delta: delta, Input: snap, Screen: g.screen}
	g.elapsed += delta

	g.score.Update(delta)

	if g.enemies.Update(delta, w.LiveEnemies(), g.screen, g.rng, w) {
		g.logger.Debug("difficulty increased",
			"level", g.enemies.Level,
			"difficulty", g.enemies.Difficulty,
			"spawnRate", g.enemies.SpawnRate,
		)
	}
	g.powerUp.Update(delta, g.screen, g.rng, w)

	if p := w.Player; playerAlive(p) {
		p.Update(ctx)
		w.SpawnBullets(p.TakeBullets())
	}

	// Enemy bullets are appended to their own index, so ranging over the
	// enemy slice is stable here.
	for _, e := range w.Enemies {
		if e.IsDead() {
			continue
		}
		e.Update(ctx)
		w.SpawnBullets(e.TakeBullets())
	}

	for _, obj := range w.Objects {
		switch obj.Kind() {
		case object.KindPlayer, object.KindEnemy:
			continue
		}
		if obj.Base().IsDead() {
			continue
		}
		obj.Update(ctx)
	}

	pruneOffScreen(w.Bullets, g.screen)
	pruneOffScreen(w.EnemyBullets, g.screen)

	g.resolve.resolve(w, collisionHooks{
		enemyKilled:      g.enemyKilled,
		powerUpCollected: g.powerUpCollected,
	})

	if p := w.Player; p == nil || p.IsDead() {
		g.gameOver()
	}

	w.Compact()
}

// pruneOffScreen marks bullets that left the field as dead.
func pruneOffScreen(bullets []*object.Bullet, screen object.Screen) {
	for _, b := range bullets {
		if !b.IsDead() && b.IsOffScreen(screen) {
			b.Kill()
		}
	}
}

func (g *Game) enemyKilled(e *object.Enemy) {
	g.score.AddKillScore(e.Score)
	b := e.Bounds()
	object.SpawnExplosion(b.CenterX(), b.CenterY(), config.ExplosionParticles, g.fxRng, g.world)
}

func (g *Game) powerUpCollected(p *object.PowerUp) {
	if p.Type == object.PowerUpBomb {
		g.bombs++
		g.logger.Debug("bomb collected", "total", g.bombs)
	}
}

func (g *Game) gameOver() {
	g.over = true
	g.finalScore = g.score.Score()
	g.logger.Info("game over",
		"score", g.finalScore,
		"kills", g.score.Kills(),
		"level", g.enemies.Level,
		"elapsed", g.elapsed.Round(time.Millisecond),
	)
}
