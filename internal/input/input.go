// Package input turns terminal events into per-tick input frames.
package input

import "github.com/gdamore/tcell/v2"

// Key is a discrete command key.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyCycle
	KeyApply
	KeyUndo
	KeyEditor
	KeyEndTurn
	KeyReport
	KeyKill
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyQuit:
		return "quit"
	case KeyCycle:
		return "cycle"
	case KeyApply:
		return "apply"
	case KeyUndo:
		return "undo"
	case KeyEditor:
		return "editor"
	case KeyEndTurn:
		return "end_turn"
	case KeyReport:
		return "report"
	case KeyKill:
		return "kill"
	default:
		return "unknown"
	}
}

// Source is what the core reads each tick: a movement delta along the two
// axial axes and key-press edges.
type Source interface {
	Axis() (dx, dz int)
	Pressed(k Key) bool
}

// Frame is the input collected for one tick.
type Frame struct {
	DX, DZ int
	Key    Key

	// Click is a mouse press in screen cells.
	Click  bool
	ClickX int
	ClickY int
}

// Axis returns the movement delta.
func (f Frame) Axis() (dx, dz int) { return f.DX, f.DZ }

// Pressed reports whether k was pressed this tick.
func (f Frame) Pressed(k Key) bool { return k != KeyNone && f.Key == k }

// Empty returns true if the frame carries nothing.
func (f Frame) Empty() bool {
	return f.DX == 0 && f.DZ == 0 && f.Key == KeyNone && !f.Click
}

// runeDirections maps the hex movement keys to axial deltas:
//
//	 y u
//	h   l
//	 b n
var runeDirections = map[rune][2]int{
	'y': {0, -1},
	'u': {1, -1},
	'h': {-1, 0},
	'l': {1, 0},
	'b': {-1, 1},
	'n': {0, 1},
}

var runeKeys = map[rune]Key{
	'q': KeyQuit,
	'Q': KeyQuit,
	't': KeyEditor,
	'T': KeyEditor,
	'e': KeyEndTurn,
	'E': KeyEndTurn,
	'c': KeyReport,
	'C': KeyReport,
	'x': KeyKill,
	'X': KeyKill,
	' ': KeyCycle,
}

// FromEvent translates a tcell event into a frame. Unknown events yield an
// empty frame.
func FromEvent(ev tcell.Event) Frame {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return fromKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			return Frame{Click: true, ClickX: x, ClickY: y}
		}
	}
	return Frame{}
}

func fromKey(key tcell.Key, r rune) Frame {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Frame{Key: KeyQuit}
	case tcell.KeyTab:
		return Frame{Key: KeyCycle}
	case tcell.KeyEnter:
		return Frame{Key: KeyApply}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Frame{Key: KeyUndo}

	case tcell.KeyUp:
		return Frame{DZ: -1}
	case tcell.KeyDown:
		return Frame{DZ: 1}
	case tcell.KeyLeft:
		return Frame{DX: -1}
	case tcell.KeyRight:
		return Frame{DX: 1}

	case tcell.KeyRune:
		if d, ok := runeDirections[r]; ok {
			return Frame{DX: d[0], DZ: d[1]}
		}
		if k, ok := runeKeys[r]; ok {
			return Frame{Key: k}
		}
	}
	return Frame{}
}
