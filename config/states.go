package config

// StateID identifies an AI behavior state.
type StateID int

const (
	StateNone StateID = iota

	// Robber
	StateApproach
	StateFollow
	StateExit
	StateDone

	// Killer
	StateDown
	StateHunt
)

var stateNames = map[StateID]string{
	StateNone:     "none",
	StateApproach: "approach",
	StateFollow:   "follow",
	StateExit:     "exit",
	StateDone:     "done",
	StateDown:     "down",
	StateHunt:     "hunt",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// SimStateID is the arena-wide simulation mode.
type SimStateID int

const (
	SimRunning SimStateID = iota
	SimPaused
	SimGameOver
)

func (s SimStateID) String() string {
	switch s {
	case SimRunning:
		return "running"
	case SimPaused:
		return "paused"
	case SimGameOver:
		return "gameover"
	}
	return "unknown"
}
