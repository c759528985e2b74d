package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"truco-server/internal/util"
)

func TestInstance(t *testing.T) {
	clear1 := util.SetEnv("TRUCO_CONFIG_FILE", "testdata/config.yaml")
	defer clear1()
	clear2 := util.SetEnv("TRUCO_TIMING_HAND_DELAY", "5s")
	defer clear2()
	clear3 := util.SetEnv("TRUCO_ENV_FILE", "testdata/test.env")
	defer clear3()
	defer os.Unsetenv("TRUCO_TIMING_SET_DELAY")

	config = Config{}

	a := assert.New(t)
	cfg := Instance()
	a.Equal("postgres://truco@localhost:5432/truco?sslmode=disable", cfg.PGDSN)
	a.Equal("debug", cfg.Log.Level)
	a.Equal(time.Millisecond*250, cfg.Timing.BotDelay)
	a.Equal(time.Second*90, cfg.Timing.IdleTimeout)
	a.Equal(time.Second*5, cfg.Timing.HandDelay)
	a.Equal(time.Second*7, cfg.Timing.SetDelay)
	a.Equal(0.5, cfg.Bot.AcceptOdds)

	// untouched values keep their defaults
	a.Equal(time.Second*2, cfg.Timing.BotResponseDelay)
	a.Equal(0.8, cfg.Bot.StrongRaiseOdds)

	// ensure that it's only loaded once
	_ = os.Setenv("TRUCO_TIMING_HAND_DELAY", "9s")
	// ensure we aren't using a pointer
	cfg.Timing.HandDelay = 0
	cfg = Instance()
	a.Equal(time.Second*5, cfg.Timing.HandDelay)
}

func TestDefaults(t *testing.T) {
	clear1 := util.SetEnv("TRUCO_CONFIG_FILE", "testdata/does-not-exist.yaml")
	defer clear1()

	assert.NoError(t, Load())
	cfg := Instance()
	assert.Equal(t, "", cfg.PGDSN)
	assert.Equal(t, "./sql", cfg.MigrationsPath)
	assert.Equal(t, time.Minute, cfg.Timing.IdleTimeout)
	assert.Equal(t, time.Second, cfg.Timing.LivenessInterval)
}
