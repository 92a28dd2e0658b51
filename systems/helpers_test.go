package systems

import (
	"math/rand"

	"github.com/pthm-cable/aquarium/components"
	"github.com/pthm-cable/aquarium/config"
)

// testConfig returns a fresh copy of the embedded defaults.
func testConfig() *config.Config {
	return config.MustLoad("")
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func newTestFish(id uint32, stage int, sex components.Sex) components.Fish {
	return components.Fish{ID: id, Stage: stage, Sex: sex, LastEat: -100}
}
