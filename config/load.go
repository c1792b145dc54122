package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// fileConfig is the on-disk shape of an overlay file. Every section is
// optional; absent keys keep their compiled-in defaults.
type fileConfig struct {
	Window    Config          `mapstructure:"window"`
	Arena     ArenaConfig     `mapstructure:"arena"`
	Player    PlayerConfig    `mapstructure:"player"`
	Bullet    BulletConfig    `mapstructure:"bullet"`
	Robber    RobberConfig    `mapstructure:"robber"`
	Killer    KillerConfig    `mapstructure:"killer"`
	Wave      WaveConfig      `mapstructure:"wave"`
	Explosion ExplosionConfig `mapstructure:"explosion"`
	Input     InputConfig     `mapstructure:"input"`
	Audio     AudioConfig     `mapstructure:"audio"`
	GameOver  GameOverConfig  `mapstructure:"gameover"`
	Pause     PauseConfig     `mapstructure:"pause"`
	Debug     DebugConfig     `mapstructure:"debug"`
}

// Load overlays the tunables with values from a config file. Environment
// variables prefixed RIPOFF_ (e.g. RIPOFF_WAVE_SKIP_CHANCE) override keys
// present in the file.
func Load(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("ripoff")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	file := fileConfig{
		Window:    *C,
		Arena:     Arena,
		Player:    Player,
		Bullet:    Bullet,
		Robber:    Robber,
		Killer:    Killer,
		Wave:      Wave,
		Explosion: Explosion,
		Input:     Input,
		Audio:     Audio,
		GameOver:  GameOver,
		Pause:     Pause,
		Debug:     Debug,
	}
	if err := v.Unmarshal(&file); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := file.validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}

	*C = file.Window
	Arena = file.Arena
	Player = file.Player
	Bullet = file.Bullet
	Robber = file.Robber
	Killer = file.Killer
	Wave = file.Wave
	Explosion = file.Explosion
	Input = file.Input
	Audio = file.Audio
	GameOver = file.GameOver
	Pause = file.Pause
	Debug = file.Debug
	return nil
}

func (f *fileConfig) validate() error {
	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", f.Window.Width, f.Window.Height)
	}
	if f.Robber.ExitIndex >= len(f.Robber.Path) || f.Robber.PickupIndex >= f.Robber.ExitIndex {
		return fmt.Errorf("robber path has %d steps, pickup %d, exit %d",
			len(f.Robber.Path), f.Robber.PickupIndex, f.Robber.ExitIndex)
	}
	if f.Arena.CellSize <= 0 {
		return fmt.Errorf("arena cell size %d must be positive", f.Arena.CellSize)
	}
	return nil
}
