package components

import (
	cfg "github.com/automoto/ripoff/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound events raised by the simulation (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
