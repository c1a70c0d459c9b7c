package game

// ActionKind names a reversible effect recorded during a turn
type ActionKind string

const (
	ActionSetLifeSegment ActionKind = "set_life_segment"
	ActionBecomeKiller   ActionKind = "become_killer"
	ActionTakeLife       ActionKind = "take_life"
	ActionEliminate      ActionKind = "eliminate"
	ActionAddMarks       ActionKind = "add_marks"
)

// Action is one entry in a TurnLog
type Action struct {
	Kind ActionKind
	Dart int // 1-based index of the throw that caused it

	ActorID  int
	TargetID int
	Segment  string
	Count    int
	// PrevScore is the target's score before the effect
	PrevScore int
}

// TurnLog records effects of the current turn so that undo can reverse
// them in LIFO order.
type TurnLog struct {
	actions []Action
}

// Push appends an action
func (l *TurnLog) Push(a Action) {
	l.actions = append(l.actions, a)
}

// Last returns the most recent action
func (l *TurnLog) Last() (Action, bool) {
	if len(l.actions) == 0 {
		return Action{}, false
	}
	return l.actions[len(l.actions)-1], true
}

// Pop removes and returns the most recent action
func (l *TurnLog) Pop() (Action, bool) {
	a, ok := l.Last()
	if ok {
		l.actions = l.actions[:len(l.actions)-1]
	}
	return a, ok
}

// PopDart removes the trailing actions recorded for dart and returns them
// most recent first. A throw that recorded nothing pops nothing.
func (l *TurnLog) PopDart(dart int) []Action {
	var popped []Action
	for len(l.actions) > 0 && l.actions[len(l.actions)-1].Dart == dart {
		a, _ := l.Pop()
		popped = append(popped, a)
	}
	return popped
}

// Len returns the number of recorded actions
func (l *TurnLog) Len() int {
	return len(l.actions)
}

// Actions returns a copy of the recorded actions, oldest first
func (l *TurnLog) Actions() []Action {
	return append([]Action(nil), l.actions...)
}

// Reset clears the log at the start of a turn
func (l *TurnLog) Reset() {
	l.actions = nil
}
