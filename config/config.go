package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every renderer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// ArenaConfig contains crate layout and shared entity sizing
type ArenaConfig struct {
	EntityScale  float64 `mapstructure:"entity_scale"` // radius of every mob in pixels
	CrateCount   int     `mapstructure:"crate_count"`
	CrateColumns int     `mapstructure:"crate_columns"`
	CrateSpacing float64 `mapstructure:"crate_spacing"`

	// Broadphase grid cell size in pixels
	CellSize int `mapstructure:"cell_size"`

	DefaultColor color.RGBA `mapstructure:"-"`
	CrateColor   color.RGBA `mapstructure:"-"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	SpawnSpeedFactor float64 `mapstructure:"spawn_speed_factor"` // initial forward speed in units of EntityScale
	DeadTime         float64 `mapstructure:"dead_time"`          // seconds before respawn
	MaxTurnRate      float64 `mapstructure:"max_turn_rate"`      // rad/s
	Brake            float64 `mapstructure:"brake"`              // px/s² applied when not controlled
	AngularBrake     float64 `mapstructure:"angular_brake"`      // rad/s²

	// Crate overlap test radius in units of EntityScale
	DestabilizeRadius float64 `mapstructure:"destabilize_radius"`
	// Turn correction multiplier while overlapping a crate
	DestabilizedTurnFactor float64 `mapstructure:"destabilized_turn_factor"`

	BulletCount int     `mapstructure:"bullet_count"`
	BulletSpeed float64 `mapstructure:"bullet_speed"`
	BulletLife  float64 `mapstructure:"bullet_life"`

	Colors []color.RGBA `mapstructure:"-"` // indexed by player slot
}

// BulletConfig contains bullet rendering values
type BulletConfig struct {
	TrailLength float64    `mapstructure:"trail_length"`
	Color       color.RGBA `mapstructure:"-"`
}

// WaypointStep is one entry of the robber approach path table.
type WaypointStep struct {
	Radius   float64 `mapstructure:"radius"`    // fraction of the screen radius from the crate
	Spread   float64 `mapstructure:"spread"`    // max random change of approach angle, radians
	MaxSpeed float64 `mapstructure:"max_speed"` // fraction of the wave base speed
	MinSpeed float64 `mapstructure:"min_speed"`
}

// RobberConfig contains robber pool and path configuration
type RobberConfig struct {
	Count        int            `mapstructure:"count"`
	TetherLength float64        `mapstructure:"tether_length"`
	TetherVertex int            `mapstructure:"tether_vertex"`
	Path         []WaypointStep `mapstructure:"path"`
	PickupIndex  int            `mapstructure:"pickup_index"`
	ExitIndex    int            `mapstructure:"exit_index"`

	TetherColor color.RGBA `mapstructure:"-"`
}

// KillerConfig contains killer tuning
type KillerConfig struct {
	MaxKillers   int     `mapstructure:"max_killers"`
	SpeedFactor  float64 `mapstructure:"speed_factor"` // multiple of the wave base speed
	DownTime     float64 `mapstructure:"down_time"`
	FireDelay    float64 `mapstructure:"fire_delay"`
	AimTolerance float64 `mapstructure:"aim_tolerance"` // radians

	BulletCount int     `mapstructure:"bullet_count"`
	BulletSpeed float64 `mapstructure:"bullet_speed"`
	BulletLife  float64 `mapstructure:"bullet_life"`

	Color color.RGBA `mapstructure:"-"`
}

// WaveConfig contains difficulty progression and frame timing
type WaveConfig struct {
	BaseSpeed          float64 `mapstructure:"base_speed"`
	SpeedScale         float64 `mapstructure:"speed_scale"` // base speed gained per wave, as a fraction
	SkipChance         float64 `mapstructure:"skip_chance"`
	SkipFactor         float64 `mapstructure:"skip_factor"` // skip chance gained per wave
	KillerInterval     int     `mapstructure:"killer_interval"`
	KillerIntervalStep int     `mapstructure:"killer_interval_step"`

	MaxDelta         float64 `mapstructure:"max_delta"`
	GameOverSlowdown float64 `mapstructure:"game_over_slowdown"`
}

// ExplosionConfig contains the wreckage effect values
type ExplosionConfig struct {
	SegmentSpeed    float64 `mapstructure:"segment_speed"` // max px/s per axis
	SegmentSpin     float64 `mapstructure:"segment_spin"`  // max rad/s
	FadeRate        float64 `mapstructure:"fade_rate"`     // segment alpha lost per second
	RingFadeRate    float64 `mapstructure:"ring_fade_rate"`
	RingGrowth      float64 `mapstructure:"ring_growth"` // px/s
	RingStartRadius float64 `mapstructure:"ring_start_radius"`
	RingMaxWidth    float64 `mapstructure:"ring_max_width"`
}

// GameOverConfig contains the game over overlay
type GameOverConfig struct {
	Title     string     `mapstructure:"title"`
	Hint      string     `mapstructure:"hint"`
	TextColor color.RGBA `mapstructure:"-"`
}

// PauseConfig contains the pause overlay
type PauseConfig struct {
	Title        string     `mapstructure:"title"`
	OverlayColor color.RGBA `mapstructure:"-"`
	TextColor    color.RGBA `mapstructure:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBroadphase bool `mapstructure:"show_broadphase"`
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Bullet BulletConfig
var Robber RobberConfig
var Killer KillerConfig
var Wave WaveConfig
var Explosion ExplosionConfig
var GameOver GameOverConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Cyan         = color.RGBA{R: 102, G: 204, B: 255, A: 255}
	Sand         = color.RGBA{R: 204, G: 204, B: 51, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 128, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 102, G: 255, B: 102, A: 255}
	Pink         = color.RGBA{R: 255, G: 179, B: 179, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
	}

	Arena = ArenaConfig{
		EntityScale:  16,
		CrateCount:   9,
		CrateColumns: 3,
		CrateSpacing: 45,
		CellSize:     32,
		DefaultColor: Cyan,
		CrateColor:   Sand,
	}

	Player = PlayerConfig{
		SpawnSpeedFactor:       8,
		DeadTime:               5,
		MaxTurnRate:            math.Pi,
		Brake:                  200,
		AngularBrake:           2 * math.Pi,
		DestabilizeRadius:      0.75,
		DestabilizedTurnFactor: 0.5,
		BulletCount:            5,
		BulletSpeed:            1000,
		BulletLife:             1,
		Colors:                 []color.RGBA{Orange, LightGreen},
	}

	Bullet = BulletConfig{
		TrailLength: 4,
		Color:       Pink,
	}

	Robber = RobberConfig{
		Count:        6,
		TetherLength: 32,
		TetherVertex: 3,
		Path: []WaypointStep{
			{Radius: 0.85, Spread: math.Pi, MaxSpeed: 0.8, MinSpeed: 0.6},
			{Radius: 0.5, Spread: math.Pi / 2, MaxSpeed: 0.6, MinSpeed: 0.5},
			{Radius: 0.25, Spread: math.Pi / 4, MaxSpeed: 0.5, MinSpeed: 0.3},
			{Radius: 0, Spread: 0, MaxSpeed: 0.3, MinSpeed: 0.02},
			{Radius: 1.5, Spread: math.Pi, MaxSpeed: 0.6, MinSpeed: 0.3},
		},
		PickupIndex: 3,
		ExitIndex:   4,
		TetherColor: color.RGBA{R: 255, G: 255, B: 255, A: 128},
	}

	Killer = KillerConfig{
		MaxKillers:   4,
		SpeedFactor:  1.25,
		DownTime:     5,
		FireDelay:    0.5,
		AimTolerance: 0.07,
		BulletCount:  2,
		BulletSpeed:  500,
		BulletLife:   0.5,
		Color:        Magenta,
	}

	Wave = WaveConfig{
		BaseSpeed:          100,
		SpeedScale:         0.01,
		SkipChance:         0.1,
		SkipFactor:         0.01,
		KillerInterval:     4,
		KillerIntervalStep: 2,
		MaxDelta:           0.1,
		GameOverSlowdown:   4,
	}

	Explosion = ExplosionConfig{
		SegmentSpeed:    32,
		SegmentSpin:     math.Pi,
		FadeRate:        0.75,
		RingFadeRate:    2.5,
		RingGrowth:      64,
		RingStartRadius: 4,
		RingMaxWidth:    32,
	}

	GameOver = GameOverConfig{
		Title:     "You've been Ripped Off!",
		Hint:      "Press fire to play again",
		TextColor: LightGreen,
	}

	Pause = PauseConfig{
		Title:        "PAUSED",
		OverlayColor: BlackOverlay,
		TextColor:    White,
	}
}
