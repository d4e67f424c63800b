package picker

// Key is a keyboard key the Picker reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyEnter
	KeySpace
)

var keyNames = map[string]Key{
	"ArrowLeft":  KeyLeft,
	"ArrowRight": KeyRight,
	"ArrowUp":    KeyUp,
	"ArrowDown":  KeyDown,
	"Home":       KeyHome,
	"End":        KeyEnd,
	"Enter":      KeyEnter,
	" ":          KeySpace,
	"Space":      KeySpace,
}

// ParseKey maps a DOM KeyboardEvent.key value such as "ArrowLeft" or " " to
// a Key. Unknown names return KeyNone.
func ParseKey(name string) Key {
	return keyNames[name]
}

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyUp:
		return "ArrowUp"
	case KeyDown:
		return "ArrowDown"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	}
	return "None"
}

// KeyResult tells the host what a key press did.
type KeyResult struct {
	// PreventDefault is set when the host should suppress the key's default
	// action, such as scrolling.
	PreventDefault bool
	// Moved is set when focus should move; the target is available from
	// TakeFocus.
	Moved bool
	// Selected is set when the key selected the focused date.
	Selected bool
}
