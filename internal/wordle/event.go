package wordle

// EventKind discriminates input events.
type EventKind int

const (
	// EventLetter carries a typed character in Event.Char.
	EventLetter EventKind = iota
	// EventBackspace erases the last typed letter.
	EventBackspace
	// EventSubmit submits the current row.
	EventSubmit
	// EventQuit asks the host to stop the game.
	EventQuit
)

// String returns a human-readable event kind.
func (k EventKind) String() string {
	switch k {
	case EventLetter:
		return "letter"
	case EventBackspace:
		return "backspace"
	case EventSubmit:
		return "submit"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one input action forwarded by the presentation layer.
type Event struct {
	Kind EventKind
	Char rune // only set for EventLetter
}

// LetterEvent returns a letter input event for ch.
func LetterEvent(ch rune) Event { return Event{Kind: EventLetter, Char: ch} }

// BackspaceEvent returns a backspace event.
func BackspaceEvent() Event { return Event{Kind: EventBackspace} }

// SubmitEvent returns a submit event.
func SubmitEvent() Event { return Event{Kind: EventSubmit} }

// QuitEvent returns a quit event.
func QuitEvent() Event { return Event{Kind: EventQuit} }
