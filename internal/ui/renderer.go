package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongrid/internal/combat"
	"github.com/samdwyer/dungeongrid/internal/entity"
	"github.com/samdwyer/dungeongrid/internal/world"
)

// ButtonWidth is the number of cells each attack button occupies.
const ButtonWidth = 12

// Status is the per-frame text shown under the map.
type Status struct {
	Turn    int
	Seed    int64
	Message string
	Help    string
}

// Layout gives the screen rows used below the map.
type Layout struct {
	HUDRow     int
	MessageRow int
	ButtonRow  int
	HelpRow    int
}

// LayoutFor returns the rows under a dungeon drawn one cell per tile.
func LayoutFor(d *world.Dungeon) Layout {
	return Layout{
		HUDRow:     d.Height,
		MessageRow: d.Height + 1,
		ButtonRow:  d.Height + 2,
		HelpRow:    d.Height + 3,
	}
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the dungeon, its units, the current ranges and the HUD.
// Attack buttons are laid out on the player so clicks can be hit-tested.
func (r *Renderer) Render(d *world.Dungeon, player *entity.Player, status Status) {
	r.screen.Clear()

	for i, tile := range d.Tiles() {
		style := tileStyle(tile)
		switch {
		case d.IsAttackableTile(i):
			style = style.Background(tcell.ColorMaroon)
		case isMovable(d, i):
			style = style.Background(tcell.ColorTeal)
		}
		r.screen.SetContent(tile.Col, tile.Row, tile.Kind.Rune(), style)
	}

	var target entity.Target
	if player != nil {
		target = player.Target()
	}

	for index, enemy := range d.Enemies() {
		style := tcell.StyleDefault.Foreground(enemy.Color()).Bold(true)
		if d.IsAttackableTile(index) {
			style = style.Background(tcell.ColorMaroon)
		}
		if target != nil && entity.Target(enemy) == target {
			style = style.Reverse(true)
		}
		r.screen.SetContent(enemy.Col, enemy.Row, enemy.Symbol(), style)
	}

	if player != nil {
		playerStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(player.Col, player.Row, '@', playerStyle)
	}

	layout := LayoutFor(d)
	r.renderHUD(layout, player, status)
	r.screen.Show()
}

func (r *Renderer) renderHUD(layout Layout, player *entity.Player, status Status) {
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	if player != nil {
		hud := fmt.Sprintf("%s  HP %d/%d  AP %d/%d  MV %d/%d  XP %d  L%d  Turn %d  Seed %d",
			player.Name(), player.HP, player.MaxHP,
			player.AttackPoints(), player.MaxAttackPoints,
			player.Movement(), player.Speed,
			player.Experience, player.Level, status.Turn, status.Seed)
		r.screen.DrawText(0, layout.HUDRow, hud, hudStyle)

		buttons := player.LayoutAttacks(0, layout.ButtonRow, ButtonWidth, 1)
		r.renderButtons(buttons, player)
	}

	r.RenderMessage(status.Message, layout.MessageRow)
	if status.Help != "" {
		r.screen.DrawText(0, layout.HelpRow, status.Help, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}
}

func (r *Renderer) renderButtons(buttons []*combat.Attack, player *entity.Player) {
	for _, attack := range buttons {
		style := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
		if attack.Cost > player.AttackPoints() {
			style = style.Background(tcell.ColorGray)
		}
		if attack == player.SelectedAttack() {
			style = style.Background(tcell.ColorYellow)
		}
		label := truncate(fmt.Sprintf("[%c] %s", attack.Symbol, attack.Name), attack.Bounds.Width-1)
		end := r.screen.DrawText(attack.Bounds.X, attack.Bounds.Y, label, style)
		for x := end; x < attack.Bounds.X+attack.Bounds.Width-1; x++ {
			r.screen.SetContent(x, attack.Bounds.Y, ' ', style)
		}
	}
}

// truncate cuts s to at most n runes, one per cell as DrawText lays them out.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.screen.DrawText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// tileStyle returns the appropriate style for a tile kind.
func tileStyle(tile world.Tile) tcell.Style {
	switch tile.Kind {
	case world.KindWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case world.KindDoor:
		return tcell.StyleDefault.Foreground(tcell.ColorOlive)
	case world.KindFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

func isMovable(d *world.Dungeon, index int) bool {
	_, ok := d.IsMovableTile(index)
	return ok
}
