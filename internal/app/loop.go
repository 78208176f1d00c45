package app

import (
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
)

// Run draws the chart and processes terminal events until the user quits.
func (app *Application) Run() {
	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go forwardEvents(app.screen, eventChan, done)

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if app.handleEvent(ev) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}
	}
}

// forwardEvents feeds screen events into out until the screen is finalized
// or done is closed.
func forwardEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent applies one terminal event and reports whether a redraw is
// needed.
func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return app.handleKey(ev)
	case *tcell.EventResize:
		app.screen.Sync()
		return true
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
}

func (app *Application) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.shouldQuit = true
		return false
	case tcell.KeyCtrlZ:
		app.suspendToShell()
		return false
	case tcell.KeyCtrlL:
		app.screen.Sync()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			app.shouldQuit = true
			return false
		case 'b', 'B':
			app.toggleBlocks()
			return true
		}
	}
	return false
}
