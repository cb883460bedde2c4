package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the demo's YAML configuration, loaded the way the teacher's
// pkg/config/config.go loads its (much larger) server configuration.
type Config struct {
	BufferSize     int    `yaml:"bufferSize"`
	MTU            int    `yaml:"mtu"`
	ClockRate      uint32 `yaml:"clockRate"`
	UseNack        bool   `yaml:"useNack"`
	SSRC           uint32 `yaml:"ssrc"`
	RTXPayloadType uint8  `yaml:"rtxPayloadType"`
	RTXSSRC        uint32 `yaml:"rtxSsrc"`
	PacketCount    int    `yaml:"packetCount"`
	NackEveryN     int    `yaml:"nackEveryN"`
	LogLevel       string `yaml:"logLevel"`
	Dev            bool   `yaml:"dev"`
}

func defaultConfig() Config {
	return Config{
		BufferSize:     200,
		MTU:            1200,
		ClockRate:      90000,
		UseNack:        true,
		SSRC:           0x1234,
		RTXPayloadType: 97,
		RTXSSRC:        0x5678,
		PacketCount:    300,
		NackEveryN:     10,
		LogLevel:       "info",
	}
}

// loadConfig reads path if non-empty, overlaying it on top of
// defaultConfig(). An empty path is not an error — the demo runs with
// its defaults. A non-empty path that cannot be read or parsed is an error.
func loadConfig(path string) (Config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return conf, errors.Wrapf(err, "reading config file %q", path)
	}

	if err := yaml.Unmarshal(body, &conf); err != nil {
		return conf, errors.Wrap(err, "parsing config file")
	}

	return conf, nil
}
