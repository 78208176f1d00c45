package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/expplot/internal/chart"
	"github.com/kk-code-lab/expplot/internal/debuglog"
	"github.com/kk-code-lab/expplot/internal/expdata"
	renderui "github.com/kk-code-lab/expplot/internal/ui/render"
)

// Config carries the command-line choices for the viewer.
type Config struct {
	Path     string
	PerBlock bool
	Style    chart.Style
	Logger   *debuglog.Logger
}

// Application represents the running viewer.
type Application struct {
	screen     tcell.Screen
	view       *renderui.ChartView
	result     *expdata.Result
	figure     *chart.Figure
	cfg        Config
	perBlock   bool
	shouldQuit bool
}

// NewApplication loads cfg.Path and opens the terminal. The file is read
// before the screen is initialized so load errors reach a normal terminal.
func NewApplication(cfg Config) (*Application, error) {
	parser := expdata.Parser{Debugf: cfg.Logger.Func()}
	res, err := parser.Load(cfg.Path, true)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return newApplication(screen, res, cfg), nil
}

// newApplication wires a viewer around an initialized screen. res should be
// a per-block result so that the block view can be toggled.
func newApplication(screen tcell.Screen, res *expdata.Result, cfg Config) *Application {
	app := &Application{
		screen:   screen,
		view:     renderui.NewChartView(screen),
		result:   res,
		cfg:      cfg,
		perBlock: cfg.PerBlock,
	}
	app.rebuildFigure()
	return app
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.screen.Fini()
	return nil
}

// rebuildFigure renders the parse result in the current mode into a fresh
// figure.
func (app *Application) rebuildFigure() {
	mode := expdata.ModeFlattened
	if app.perBlock {
		mode = expdata.ModePerBlock
	}
	fig := chart.NewFigure()
	chart.Render(app.result.WithMode(mode), fig, app.cfg.Style)
	app.figure = fig
	app.cfg.Logger.Printf("figure rebuilt: mode=%s series=%d", mode, len(fig.Series))
}

func (app *Application) toggleBlocks() {
	app.perBlock = !app.perBlock
	app.rebuildFigure()
}

func (app *Application) render() {
	app.view.Render(app.figure, app.statusText())
}

func (app *Application) statusText() string {
	name := filepath.Base(app.cfg.Path)
	mode := "flattened"
	if app.perBlock {
		mode = "per-block"
	}
	blocks := 0
	if app.result != nil {
		blocks = len(app.result.Blocks)
	}
	parts := []string{
		name,
		fmt.Sprintf("%d blocks", blocks),
		mode,
		"b toggle blocks",
		"q quit",
	}
	return " " + strings.Join(parts, " · ")
}
