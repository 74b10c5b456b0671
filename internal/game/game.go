package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeongrid/internal/ui"
)

const helpText = "click: move/target  click button: attack  e: end turn  r: new dungeon  esc: cancel  q: quit"

// Game drives a Session from terminal input and renders it after every event.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a new game instance for cfg and generates the first dungeon.
func New(ctx context.Context, cfg Config) (*Game, error) {
	session, err := NewSession(ctx, cfg)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		session:  session,
		running:  true,
	}, nil
}

// Run executes the main game loop until the player quits.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()

	for g.running {
		g.render()
		g.handleInput(ctx)
	}
	return nil
}

func (g *Game) render() {
	g.renderer.Render(g.session.Dungeon(), g.session.Player(), ui.Status{
		Turn:    g.session.Turn(),
		Seed:    g.session.Seed(),
		Message: g.session.Message(),
		Help:    helpText,
	})
}

// handleInput processes a single input event.
func (g *Game) handleInput(ctx context.Context) {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			g.handleClick(ctx, x, y)
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		g.running = false
	case tcell.KeyEscape:
		g.session.CancelAttack()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
		case 'e', 'E':
			g.session.EndTurn(ctx)
			g.session.BeginTurn(ctx)
		case 'r', 'R':
			g.session.Reset(ctx, g.session.Seed()+1)
		}
	}
}

// handleClick routes a click on the map to targeting or movement, and a click
// on the button row to attack selection.
func (g *Game) handleClick(ctx context.Context, x, y int) {
	d := g.session.Dungeon()
	layout := ui.LayoutFor(d)

	if y == layout.ButtonRow {
		if g.session.ChooseAttack(x, y) {
			_, err := g.session.Attack(ctx)
			g.session.Report(err)
		}
		return
	}
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return
	}

	if index, _ := d.IndexOf(x, y); d.IsAttackableTile(index) {
		g.session.Report(g.session.Target(x, y))
		return
	}
	switch err := g.session.MoveTo(x, y); {
	case errors.Is(err, ErrAttackPending):
		g.session.CancelAttack()
	default:
		g.session.Report(err)
	}
}
