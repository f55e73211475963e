package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/editmode/internal/input/key"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{
			name: "plain rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			want: key.NewRuneEvent('a', key.ModNone),
		},
		{
			name: "alt rune",
			ev:   tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			want: key.NewRuneEvent('x', key.ModAlt),
		},
		{
			name: "escape",
			ev:   tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyEscape, key.ModNone),
		},
		{
			name: "enter",
			ev:   tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyEnter, key.ModNone),
		},
		{
			name: "backspace2",
			ev:   tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyBackspace, key.ModNone),
		},
		{
			name: "delete",
			ev:   tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyDelete, key.ModNone),
		},
		{
			name: "insert",
			ev:   tcell.NewEventKey(tcell.KeyInsert, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyInsert, key.ModNone),
		},
		{
			name: "arrow up",
			ev:   tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
			want: key.NewSpecialEvent(key.KeyUp, key.ModNone),
		},
		{
			name: "ctrl chord folded into key code",
			ev:   tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl),
			want: key.NewRuneEvent('t', key.ModCtrl),
		},
		{
			name: "ctrl chord without modifier flag",
			ev:   tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModNone),
			want: key.NewRuneEvent('o', key.ModCtrl),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateKey(tt.ev)
			if !got.Equals(tt.want) {
				t.Errorf("TranslateKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTranslateKeyUnknown(t *testing.T) {
	got := TranslateKey(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	if got.Key != key.KeyNone {
		t.Errorf("unknown key = %v, want KeyNone event", got)
	}
}
