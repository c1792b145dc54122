package systems

import (
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices for device IDs to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input, updates the Input component and forwards
// steering and firing to the players. Must run before the simulation.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = components.ActionFrame{}
	copy(input.PlayerPrevious, input.PlayerCurrent)
	for i := range input.PlayerCurrent {
		input.PlayerCurrent[i] = components.ActionFrame{}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		if pollBinding(input, binding, gamepadIDs) {
			input.Current[actionID] = true
		}
	}
	for slot, bindings := range cfg.Input.PlayerBindings {
		var pads []ebiten.GamepadID
		if slot < len(gamepadIDs) {
			pads = gamepadIDs[slot : slot+1]
		}
		for actionID, binding := range bindings {
			if pollBinding(input, binding, pads) {
				input.PlayerCurrent[slot][actionID] = true
			}
		}
		pollAnalogTurn(input, slot, pads)
	}

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		cfg.Debug.ShowBroadphase = !cfg.Debug.ShowBroadphase
	}

	paused := GetArena(e).State == cfg.SimPaused
	dispatchPointers(e, pollPointers(), paused)
	if paused {
		return
	}
	for slot := range input.PlayerCurrent {
		applyPlayerActions(e, input, slot)
	}
}

// pollBinding reports whether any key or gamepad button of the binding is held.
func pollBinding(input *components.InputData, binding cfg.InputBinding, pads []ebiten.GamepadID) bool {
	pressed := false
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			pressed = true
			input.LastInputMethod = components.InputKeyboard
		}
	}
	for _, gpID := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				pressed = true
				input.LastInputMethod = components.InputGamepad
			}
		}
	}
	return pressed
}

// pollAnalogTurn merges the left stick into the slot's turn actions.
func pollAnalogTurn(input *components.InputData, slot int, pads []ebiten.GamepadID) {
	for _, gpID := range pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if h < -cfg.Input.AnalogDeadzone {
			input.PlayerCurrent[slot][cfg.ActionTurnLeft] = true
			input.LastInputMethod = components.InputGamepad
		}
		if h > cfg.Input.AnalogDeadzone {
			input.PlayerCurrent[slot][cfg.ActionTurnRight] = true
			input.LastInputMethod = components.InputGamepad
		}
	}
}

// pointerKind is the transition a pointer went through this frame.
type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
)

type pointerEvent struct {
	id   components.PointerID
	kind pointerKind
	pos  gamemath.Vec
}

// Reusable event buffer to avoid allocations
var pointerEvents []pointerEvent

// pollPointers collects this frame's touch and left mouse button events:
// presses, then held positions, then releases.
func pollPointers() []pointerEvent {
	events := pointerEvents[:0]

	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, pointerEvent{components.PointerID(id), pointerDown, gamemath.V(float64(x), float64(y))})
	}
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, pointerEvent{components.PointerID(id), pointerMove, gamemath.V(float64(x), float64(y))})
	}
	touchIDs = inpututil.AppendJustReleasedTouchIDs(touchIDs[:0])
	for _, id := range touchIDs {
		events = append(events, pointerEvent{id: components.PointerID(id), kind: pointerUp})
	}

	x, y := ebiten.CursorPosition()
	cursor := gamemath.V(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{components.MousePointer, pointerDown, cursor})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{components.MousePointer, pointerMove, cursor})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{id: components.MousePointer, kind: pointerUp})
	}

	pointerEvents = events
	return events
}

// dispatchPointers forwards pointer events to the players. Releases are
// only reported on the frame they happen, so they are applied even while
// paused; presses and drags are not.
func dispatchPointers(e *ecs.ECS, events []pointerEvent, paused bool) {
	for _, ev := range events {
		switch {
		case ev.kind == pointerUp:
			PointerUp(e, ev.id)
		case paused:
		case ev.kind == pointerDown:
			PointerDown(e, ev.id, ev.pos)
		case ev.kind == pointerMove:
			PointerMove(e, ev.id, ev.pos)
		}
	}
}

// PointerDown handles a new touch. Landing in a move zone takes control of
// that player; landing in a fire zone fires.
func PointerDown(e *ecs.ECS, id components.PointerID, pos gamemath.Vec) {
	input := getOrCreateInput(e)
	input.LastInputMethod = components.InputTouch
	for _, p := range GetArena(e).Players {
		player := components.Player.Get(p)
		switch {
		case player.MoveZone.Contains(pos):
			if _, held := input.Pointers[id]; held {
				continue
			}
			input.Pointers[id] = player.Slot
			PlayerGrab(e, player.Slot)
			PlayerMove(e, player.Slot, pos)
		case player.FireZone.Contains(pos):
			PlayerFire(e, player.Slot)
		}
	}
}

// PointerMove steers with a held pointer while it stays in its move zone.
func PointerMove(e *ecs.ECS, id components.PointerID, pos gamemath.Vec) {
	input := getOrCreateInput(e)
	slot, ok := input.Pointers[id]
	if !ok {
		return
	}
	entry, ok := PlayerBySlot(e, slot)
	if ok && components.Player.Get(entry).MoveZone.Contains(pos) {
		PlayerMove(e, slot, pos)
	}
}

// PointerUp releases the player a pointer was steering.
func PointerUp(e *ecs.ECS, id components.PointerID) {
	input := getOrCreateInput(e)
	slot, ok := input.Pointers[id]
	if !ok {
		return
	}
	delete(input.Pointers, id)
	PlayerRelease(e, slot)
}

// applyPlayerActions steers a player from its keys or gamepad. Turning
// requests a heading a fixed lead away from the current one.
func applyPlayerActions(e *ecs.ECS, input *components.InputData, slot int) {
	left := GetPlayerAction(input, slot, cfg.ActionTurnLeft).Pressed
	right := GetPlayerAction(input, slot, cfg.ActionTurnRight).Pressed
	thrust := GetPlayerAction(input, slot, cfg.ActionThrust).Pressed

	steering := left || right || thrust
	switch {
	case steering && !input.KeySteering[slot]:
		input.KeySteering[slot] = true
		PlayerGrab(e, slot)
	case !steering && input.KeySteering[slot]:
		input.KeySteering[slot] = false
		PlayerRelease(e, slot)
	}

	if steering {
		if entry, ok := PlayerBySlot(e, slot); ok {
			turn := 0.0
			if left {
				turn++
			}
			if right {
				turn--
			}
			angle := components.Transform.Get(entry).Angle
			components.Player.Get(entry).DestAngle = gamemath.AddAngle(angle, turn*cfg.Input.KeyTurnLead)
			if thrust {
				components.Machine.Get(entry).Vel.Y = cfg.Input.KeyThrustSpeed
			}
		}
	}

	if GetPlayerAction(input, slot, cfg.ActionFire).JustPressed {
		PlayerFire(e, slot)
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		slots := len(cfg.Input.PlayerBindings)
		components.Input.SetValue(entry, components.InputData{
			PlayerCurrent:  make([]components.ActionFrame, slots),
			PlayerPrevious: make([]components.ActionFrame, slots),
			KeySteering:    make([]bool, slots),
			Pointers:       make(map[components.PointerID]int),
		})
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for a global action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return actionState(input.Current[id], input.Previous[id])
}

// GetPlayerAction returns the ActionState for a player slot's action.
func GetPlayerAction(input *components.InputData, slot int, id cfg.ActionID) components.ActionState {
	if slot < 0 || slot >= len(input.PlayerCurrent) {
		return components.ActionState{}
	}
	return actionState(input.PlayerCurrent[slot][id], input.PlayerPrevious[slot][id])
}

func actionState(curr, prev bool) components.ActionState {
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
