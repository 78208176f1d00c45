//go:build !windows

package app

import (
	"os"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func (app *Application) suspendToShell() {
	// Hand the terminal back before stopping; signal only this process so
	// the launching shell keeps job control.
	_ = app.screen.Suspend()
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}

func (app *Application) resumeAfterStop() bool {
	if err := app.screen.Resume(); err != nil {
		app.cfg.Logger.Printf("resume failed: %v", err)
		return false
	}
	app.screen.Sync()
	_ = app.screen.PostEvent(tcell.NewEventInterrupt("resume"))
	return true
}

func contSignals() []os.Signal {
	return []os.Signal{syscall.SIGCONT}
}
