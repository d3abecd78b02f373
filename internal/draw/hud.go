package draw

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tomz197/skyshooter/internal/loop"
	"github.com/tomz197/skyshooter/internal/object"
)

// gameOverArt is the figlet "small" title shown after death.
var gameOverArt = []string{
	`   ___   _   __  __ ___    _____   _____ ___  `,
	`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
	` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
	`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
}

const restartPrompt = ">>  Press ENTER or R to Restart  <<"

// StatusLines formats the HUD as top-left overlay text. Fields are padded to
// a fixed width so shrinking values overwrite their previous text.
func StatusLines(h loop.HUD) []string {
	lines := []string{
		fmt.Sprintf("Score: %-8d x%-2d", h.Score, h.Multiplier),
		fmt.Sprintf("Health: %-3.0f %s", h.Health, healthGauge(h.HealthFraction(), 10)),
	}
	if h.Combo > 0 {
		lines = append(lines, fmt.Sprintf("Combo: %-3d %.1fs", h.Combo, h.ComboRemaining))
	}
	if s := effectsLine(h); s != "" {
		lines = append(lines, s)
	}
	return lines
}

// StatsLine formats the bottom status bar.
func StatsLine(h loop.HUD) string {
	return fmt.Sprintf("Lvl %-2d  Enemies %-2d  Kills %-4d  Bombs %-2d  %s  FPS %-3d",
		h.Level, h.Enemies, h.Kills, h.BombsCollected, formatElapsed(h.Elapsed), h.FPS)
}

// GameOverLines returns the game over title and score lines.
func GameOverLines(h loop.HUD) []string {
	lines := append([]string(nil), gameOverArt...)
	return append(lines,
		"",
		fmt.Sprintf("Score: %d", h.FinalScore),
		fmt.Sprintf("Kills: %d   Level: %d   Time: %s", h.Kills, h.Level, formatElapsed(h.Elapsed)),
	)
}

// ShowPrompt reports whether the blinking restart prompt is visible at now.
func ShowPrompt(now time.Time) bool {
	return now.UnixMilli()/600%2 == 0
}

// RestartPrompt is the text of the blinking restart prompt.
func RestartPrompt() string { return restartPrompt }

func effectsLine(h loop.HUD) string {
	effects := []struct {
		name string
		e    object.Effect
	}{
		{"Spread", h.SpreadShot},
		{"Rapid", h.RapidFire},
		{"Shield", h.Shield},
		{"Pierce", h.PiercingRounds},
	}
	var parts []string
	for _, fx := range effects {
		if fx.e.Active {
			parts = append(parts, fmt.Sprintf("%s %.0fs", fx.name, fx.e.Remaining))
		}
	}
	return strings.Join(parts, "  ")
}

func healthGauge(fraction float64, width int) string {
	filled := int(fraction*float64(width) + 0.5)
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}

func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

// drawHUD writes the overlay text inside the render area.
func drawHUD(s tcell.Screen, c *Canvas, h loop.HUD) {
	style := tcell.StyleDefault.Foreground(ColorWhite)
	for i, line := range StatusLines(h) {
		DrawText(s, c.OffsetCol()+1, c.OffsetRow()+i, line, style)
	}
	if c.TerminalHeight() > 1 {
		DrawText(s, c.OffsetCol()+1, c.OffsetRow()+c.TerminalHeight()-1, StatsLine(h), style.Dim(true))
	}
}

// drawGameOver writes the centered game over screen.
func drawGameOver(s tcell.Screen, c *Canvas, h loop.HUD, now time.Time) {
	lines := GameOverLines(h)
	width := 0
	for _, line := range gameOverArt {
		width = max(width, len(line))
	}

	title := tcell.StyleDefault.Foreground(ColorEnemy).Bold(true)
	text := tcell.StyleDefault.Foreground(ColorWhite)

	top := c.OffsetRow() + (c.TerminalHeight()-len(lines)-2)/2
	left := c.OffsetCol() + (c.TerminalWidth()-width)/2
	for i, line := range lines {
		if i < len(gameOverArt) {
			DrawText(s, max(left, c.OffsetCol()), top+i, line, title)
			continue
		}
		DrawCentered(s, c.OffsetCol(), c.TerminalWidth(), top+i, line, text)
	}
	if ShowPrompt(now) {
		DrawCentered(s, c.OffsetCol(), c.TerminalWidth(), top+len(lines)+1, restartPrompt, text)
	}
}
