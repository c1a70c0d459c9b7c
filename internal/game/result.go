package game

// Status classifies the outcome of a throw
type Status string

const (
	StatusOK            Status = "ok"
	StatusWin           Status = "win"
	StatusBust          Status = "bust"
	StatusInfo          Status = "info"
	StatusWarning       Status = "warning"
	StatusError         Status = "error"
	StatusInvalidOpen   Status = "invalid_open"
	StatusInvalidTarget Status = "invalid_target"
)

// Sound hints for the presentation layer
const (
	SoundHit  = "hit"
	SoundMiss = "miss"
	SoundBust = "bust"
	SoundWin  = "win"
)

// ThrowResult reports what a throw did
type ThrowResult struct {
	Status  Status
	Message string
	Sound   string

	// EndTurn asks the controller to end the turn before three darts
	EndTurn bool

	// Winner is set on StatusWin when there is one
	Winner *Player
}

// Counted reports whether the throw was accepted by the rules. Rejected
// throws stay in the turn but change no score.
func (r ThrowResult) Counted() bool {
	switch r.Status {
	case StatusInvalidOpen, StatusInvalidTarget, StatusWarning, StatusError:
		return false
	}
	return true
}

func ok(msg string) ThrowResult {
	return ThrowResult{Status: StatusOK, Message: msg, Sound: SoundHit}
}

func missed(msg string) ThrowResult {
	return ThrowResult{Status: StatusOK, Message: msg, Sound: SoundMiss}
}

func info(msg string) ThrowResult {
	return ThrowResult{Status: StatusInfo, Message: msg, Sound: SoundHit}
}

func warning(msg string) ThrowResult {
	return ThrowResult{Status: StatusWarning, Message: msg}
}

func bust(msg string) ThrowResult {
	return ThrowResult{Status: StatusBust, Message: msg, Sound: SoundBust, EndTurn: true}
}

func win(p *Player, msg string) ThrowResult {
	return ThrowResult{Status: StatusWin, Message: msg, Sound: SoundWin, Winner: p}
}
