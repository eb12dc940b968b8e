package navigation

// Intent is the navigation command a raw key name stands for
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentEnter
	IntentEscape
	IntentTab
)

// Raw key names understood by the engine
const (
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyTab        = "Tab"
)

var lexicon = map[string]Intent{
	KeyArrowUp:    IntentUp,
	KeyArrowDown:  IntentDown,
	KeyArrowLeft:  IntentLeft,
	KeyArrowRight: IntentRight,
	KeyEnter:      IntentEnter,
	KeyEscape:     IntentEscape,
	KeyTab:        IntentTab,
}

// Classify maps a raw key name to its intent. The second return value is
// false for keys the engine does not handle.
func Classify(raw string) (Intent, bool) {
	intent, ok := lexicon[raw]
	return intent, ok
}

// IsNavKey reports whether raw is one of the navigation keys
func IsNavKey(raw string) bool {
	_, ok := lexicon[raw]
	return ok
}

// Key returns the raw key name for the intent
func (i Intent) Key() string {
	for raw, intent := range lexicon {
		if intent == i {
			return raw
		}
	}
	return ""
}

// IsArrow reports whether the intent is one of the four directions
func (i Intent) IsArrow() bool {
	return i >= IntentUp && i <= IntentRight
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentEnter:
		return "enter"
	case IntentEscape:
		return "escape"
	case IntentTab:
		return "tab"
	default:
		return "none"
	}
}
