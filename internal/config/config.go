package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/peter-bloomfield/arduino-christmas-lights/internal/twinkle"
)

type Serial struct {
	Dev  string `yaml:"dev"`  // e.g. /dev/ttyUSB0
	Baud int    `yaml:"baud"` // e.g. 9600
}

type SPI struct {
	Dev string `yaml:"dev"` // e.g. /dev/spidev0.0; empty picks the first port
}

// Schedule fires a command string on a cron spec.
type Schedule struct {
	Cron     string `yaml:"cron"`
	Commands string `yaml:"commands"`
}

type Config struct {
	Lights       int          `yaml:"lights"`
	FPS          int          `yaml:"fps"`
	Brightness   float64      `yaml:"brightness"`
	CycleSeconds float64      `yaml:"cycle_seconds"`
	Scheme       string       `yaml:"scheme"`
	Band         twinkle.Band `yaml:"band"`

	Driver string `yaml:"driver"` // "spi" | "sim"
	SPI    SPI    `yaml:"spi,omitempty"`
	Serial Serial `yaml:"serial,omitempty"`

	Addr         string     `yaml:"addr"`
	HeartbeatPin string     `yaml:"heartbeat_pin,omitempty"`
	Schedules    []Schedule `yaml:"schedules,omitempty"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	c.setDefaults()
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}

// Default returns a config with every default applied.
func Default() *Config {
	c := &Config{}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	if c.Lights <= 0 {
		c.Lights = 50
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Brightness <= 0 || c.Brightness > 1 {
		c.Brightness = 1.0
	}
	if c.CycleSeconds <= 0 {
		c.CycleSeconds = 5.0
	}
	if c.Scheme == "" {
		c.Scheme = "xmas"
	}
	if c.Band.Low == 0 && c.Band.High == 0 {
		c.Band = twinkle.Band{Low: 0.5, High: 1.0}
	}
	if c.Driver == "" {
		c.Driver = "spi"
	}
	if c.Serial.Baud <= 0 {
		c.Serial.Baud = 9600
	}
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}
