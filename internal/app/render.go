package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editmode/internal/input/mode"
)

// render paints the buffer and a one-line status bar.
func (app *Application) render() {
	app.mu.Lock()
	defer app.mu.Unlock()

	app.screen.Clear()
	width, height := app.screen.Size()
	if height < 2 {
		app.screen.Show()
		return
	}

	textRows := height - 1
	style := tcell.StyleDefault

	for row := 0; row < textRows && row < app.host.LineCount(); row++ {
		col := 0
		for _, r := range app.host.Line(row) {
			if col >= width {
				break
			}
			app.screen.SetContent(col, row, r, nil, style)
			col++
		}
	}

	app.renderStatus(width, height-1)

	caret := app.host.Caret()
	if caret.Line < textRows {
		app.screen.ShowCursor(caret.Col, caret.Line)
	} else {
		app.screen.HideCursor()
	}

	app.screen.Show()
}

func (app *Application) renderStatus(width, row int) {
	label := app.statusLabel()
	caret := app.host.Caret()
	status := fmt.Sprintf(" %s  %d:%d", label, caret.Line+1, caret.Col+1)
	if app.pendingCount > 0 {
		status += fmt.Sprintf("  count %d", app.pendingCount)
	}

	style := tcell.StyleDefault.Reverse(true)
	for col := 0; col < width; col++ {
		r := ' '
		if col < len(status) {
			r = rune(status[col])
		}
		app.screen.SetContent(col, row, r, nil, style)
	}
}

func (app *Application) statusLabel() string {
	switch app.state {
	case stateEditing:
		if app.engine.Kind() == mode.KindReplace {
			return "-- REPLACE --"
		}
		return "-- INSERT --"
	case stateOneShot:
		return "-- (normal) --"
	default:
		return "NORMAL"
	}
}
