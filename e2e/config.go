package e2e

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_DEBUG_EVENTS allows dumping full event/reply payloads per step
	DebugEvents bool `envconfig:"E2E_DEBUG_EVENTS" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours     bool          `envconfig:"E2E_COLOURS" default:"true"`
	StepTimeout time.Duration `envconfig:"E2E_STEP_TIMEOUT" default:"10s"`
	NumWorkers  int           `envconfig:"E2E_NUM_WORKERS" default:"2"`
	BufferSize  int           `envconfig:"E2E_BUFFER_SIZE" default:"16"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
