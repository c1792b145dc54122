package components

import "github.com/yohamta/donburi"

type CrateData struct {
	Targeted   int            // robbers currently assigned to this crate
	TetheredBy donburi.Entity // robber dragging it, donburi.Null when free
}

var Crate = donburi.NewComponentType[CrateData]()
