package components

import "github.com/yohamta/donburi"

type KillerData struct {
	DownTime  float64
	FireDelay float64
}

var Killer = donburi.NewComponentType[KillerData]()
