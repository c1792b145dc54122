package components

import (
	cfg "github.com/automoto/ripoff/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
	InputTouch
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerID identifies a touch or the mouse.
type PointerID int

// MousePointer is the PointerID used for the left mouse button.
const MousePointer PointerID = -1

type ActionFrame [cfg.ActionCount]bool

// InputData stores the current and previous frame's pressed state for all
// actions (singleton component). JustPressed/JustReleased are computed on
// demand by comparing frames.
type InputData struct {
	Current  ActionFrame // global actions, all devices merged
	Previous ActionFrame

	// Per player slot
	PlayerCurrent  []ActionFrame
	PlayerPrevious []ActionFrame
	KeySteering    []bool // slot is currently holding a grab from keys or gamepad

	// Pointers that began in a move zone, mapped to the slot they steer
	Pointers map[PointerID]int

	LastInputMethod InputMethod
}

var Input = donburi.NewComponentType[InputData]()
