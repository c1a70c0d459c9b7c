package game

// VariantState is the per-player state a variant keeps beyond score and
// marks. Fields returns the persisted form used by snapshots.
type VariantState interface {
	Fields() map[string]any
	setFields(map[string]any)
}

// X01Phase is a player's progress through an X01 leg
type X01Phase int

const (
	NotOpened X01Phase = iota
	Opened
	Finished
)

func (p X01Phase) String() string {
	switch p {
	case NotOpened:
		return "not opened"
	case Opened:
		return "opened"
	default:
		return "finished"
	}
}

// X01State tracks opening, busts and the data needed to undo a finish
type X01State struct {
	Opened            bool
	OpenedOnDart      int // dart of this turn that opened, 0 if opened earlier
	Busted            bool
	PrevHighestFinish int
}

func (s *X01State) Fields() map[string]any {
	return map[string]any{
		"has_opened":          s.Opened,
		"opened_on_dart":      s.OpenedOnDart,
		"busted":              s.Busted,
		"prev_highest_finish": s.PrevHighestFinish,
	}
}

func (s *X01State) setFields(m map[string]any) {
	s.Opened = boolField(m, "has_opened")
	s.OpenedOnDart = intField(m, "opened_on_dart")
	s.Busted = boolField(m, "busted")
	s.PrevHighestFinish = intField(m, "prev_highest_finish")
}

// KillerPhase is a player's progress in Killer
type KillerPhase int

const (
	ChoosingLifeSegment KillerPhase = iota
	QualifyingAsKiller
	ActiveKiller
)

// KillerState holds the claimed life segment and killer status
type KillerState struct {
	LifeSegment string // "1".."20" or "Bull", empty until claimed
	CanKill     bool
}

// Phase derives the Killer phase from the state
func (s *KillerState) Phase() KillerPhase {
	switch {
	case s.LifeSegment == "":
		return ChoosingLifeSegment
	case !s.CanKill:
		return QualifyingAsKiller
	default:
		return ActiveKiller
	}
}

func (s *KillerState) Fields() map[string]any {
	return map[string]any{
		"life_segment": s.LifeSegment,
		"can_kill":     s.CanKill,
	}
}

func (s *KillerState) setFields(m map[string]any) {
	s.LifeSegment = stringField(m, "life_segment")
	s.CanKill = boolField(m, "can_kill")
}

// TargetState holds the active target of the sequential target games
type TargetState struct {
	NextTarget string // empty once every target is done
}

func (s *TargetState) Fields() map[string]any {
	return map[string]any{"next_target": s.NextTarget}
}

func (s *TargetState) setFields(m map[string]any) {
	s.NextTarget = stringField(m, "next_target")
}

// EliminationState records whether the current turn busted
type EliminationState struct {
	Busted bool
}

func (s *EliminationState) Fields() map[string]any {
	return map[string]any{"busted": s.Busted}
}

func (s *EliminationState) setFields(m map[string]any) {
	s.Busted = boolField(m, "busted")
}

// CricketState is empty: cricket keeps everything in marks and score
type CricketState struct{}

func (s *CricketState) Fields() map[string]any { return map[string]any{} }

func (s *CricketState) setFields(map[string]any) {}

func x01State(p *Player) *X01State {
	s, ok := p.State.(*X01State)
	if !ok {
		s = &X01State{}
		p.State = s
	}
	return s
}

func killerState(p *Player) *KillerState {
	s, ok := p.State.(*KillerState)
	if !ok {
		s = &KillerState{}
		p.State = s
	}
	return s
}

func targetState(p *Player) *TargetState {
	s, ok := p.State.(*TargetState)
	if !ok {
		s = &TargetState{}
		p.State = s
	}
	return s
}

func eliminationState(p *Player) *EliminationState {
	s, ok := p.State.(*EliminationState)
	if !ok {
		s = &EliminationState{}
		p.State = s
	}
	return s
}

// Snapshot values may come back from JSON, so numbers arrive as float64.
func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func boolField(m map[string]any, key string) bool {
	v, _ := m[key].(bool)
	return v
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return v
}
