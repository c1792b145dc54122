package components

import (
	"github.com/automoto/ripoff/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
}

// Set records a transition.
func (s *StateData) Set(next config.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
}

var State = donburi.NewComponentType[StateData]()
