package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionTurnLeft
	ActionTurnRight
	ActionThrust
	ActionFire
	ActionPause
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds touch zone tuning and all key mappings
type InputConfig struct {
	MoveSense    float64 `mapstructure:"move_sense"` // pointer distance below which thrust is ignored
	MoveScale    float64 `mapstructure:"move_scale"` // thrust per pixel of pointer distance
	ZoneFraction float64 `mapstructure:"zone_fraction"`
	ZoneAlpha    float64 `mapstructure:"zone_alpha"`

	// Keyboard steering: heading offset requested while a turn key is held,
	// and forward speed while thrust is held.
	KeyTurnLead    float64 `mapstructure:"key_turn_lead"`
	KeyThrustSpeed float64 `mapstructure:"key_thrust_speed"`
	AnalogDeadzone float64 `mapstructure:"analog_deadzone"`

	// Global bindings (pause, debug)
	Bindings map[ActionID]InputBinding `mapstructure:"-"`
	// Per player slot; gamepad N drives slot N
	PlayerBindings []map[ActionID]InputBinding `mapstructure:"-"`
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		MoveSense:      2,
		MoveScale:      2,
		ZoneFraction:   0.2,
		ZoneAlpha:      0.45,
		KeyTurnLead:    0.8,
		KeyThrustSpeed: 160,
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
		PlayerBindings: []map[ActionID]InputBinding{
			{
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyLeft}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyRight}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
				ActionThrust:    {Keys: []ebiten.Key{ebiten.KeyUp}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeyEnter}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
			},
			{
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyA}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyD}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight}},
				ActionThrust:    {Keys: []ebiten.Key{ebiten.KeyW}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeySpace}, StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom}},
			},
		},
	}
}
