package systems

import (
	"testing"

	cfg "github.com/automoto/ripoff/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPlaySFXQueues(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	PlaySFX(e, cfg.SoundShot)
	PlaySFX(e, cfg.SoundNone)
	PlaySFX(e, cfg.SoundExplosion)

	assert.Equal(t, []cfg.SoundID{cfg.SoundShot, cfg.SoundExplosion}, GetOrCreateAudio(e).PendingSFX)
}

func TestUpdateAudioWithoutQueue(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	// No audio component and an empty queue must not open the device
	UpdateAudio(e)
	GetOrCreateAudio(e)
	UpdateAudio(e)
	assert.Nil(t, globalAudioContext)
}
