package core

// Action is a semantic input, decoupled from the physical key that produced it.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionJump             // Space: jump, flap, fire, drop, click
	ActionConfirm          // Enter
	ActionSecondary        // F: flag a cell, alternate action
	ActionBuy1             // 1
	ActionBuy2             // 2
	ActionBack             // B, Escape
	ActionRestart          // R
	ActionQuit             // Q, Ctrl+C
	ActionPause            // P
)

var actionNames = map[Action]string{
	ActionNone:      "None",
	ActionUp:        "Up",
	ActionDown:      "Down",
	ActionLeft:      "Left",
	ActionRight:     "Right",
	ActionJump:      "Jump",
	ActionConfirm:   "Confirm",
	ActionSecondary: "Secondary",
	ActionBuy1:      "Buy1",
	ActionBuy2:      "Buy2",
	ActionBack:      "Back",
	ActionRestart:   "Restart",
	ActionQuit:      "Quit",
	ActionPause:     "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputFrame collects everything the player did between two ticks.
type InputFrame struct {
	// Actions holds the semantic actions triggered this frame.
	Actions map[Action]bool

	// Text holds letters typed this frame, in order. Only games that
	// implement registry.TextInput receive letters here.
	Text []rune
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Type appends a typed rune to the frame.
func (f *InputFrame) Type(r rune) {
	f.Text = append(f.Text, r)
}

// Runes returns the letters typed this frame.
func (f InputFrame) Runes() []rune {
	return f.Text
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Text) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Text = f.Text[:0]
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Text) > 0 {
		clone.Text = append([]rune(nil), f.Text...)
	}
	return clone
}

// Frame is a convenience constructor used mostly by tests.
func Frame(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}
