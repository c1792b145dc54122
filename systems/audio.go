package systems

import (
	"log"
	"sync"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/sfx"
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once on first playback and shared across scenes
var (
	globalAudioContext *audio.Context
	globalSFXBank      map[cfg.SoundID][]byte
	globalSFXVolume    float64 = cfg.Audio.SFXVolume
	audioInitOnce      sync.Once
)

// initGlobalAudio opens the audio device and renders every patch (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)

		patches := make(map[string]sfx.Patch, len(cfg.Sound.Patches))
		for id, p := range cfg.Sound.Patches {
			patches[id.String()] = p
		}
		bank := sfx.RenderBank(patches, beep.SampleRate(cfg.Audio.SampleRate), cfg.Audio.Seed)

		globalSFXBank = make(map[cfg.SoundID][]byte, len(bank))
		for id := range cfg.Sound.Patches {
			globalSFXBank[id] = bank[id.String()]
		}
		log.Printf("audio: rendered %d sound effects at %d Hz", len(globalSFXBank), cfg.Audio.SampleRate)
	})
}

// UpdateAudio plays the sound effects queued since the last frame
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}

	initGlobalAudio()
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}

	data, ok := globalSFXBank[soundID]
	if !ok {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player := globalAudioContext.NewPlayerFromBytes(data)
	player.SetVolume(volume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	if sound == cfg.SoundNone {
		return
	}
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(volume float64) {
	globalSFXVolume = volume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
