// Package config loads renormtsp run configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/renormtsp/anneal"
	"github.com/katalvlaran/renormtsp/mqttdiag"
	"github.com/katalvlaran/renormtsp/renorm"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the full run configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Anneal  AnnealConfig  `yaml:"anneal"`
	Renorm  RenormConfig  `yaml:"renorm"`
	Output  OutputConfig  `yaml:"output"`
	MQTT    MQTTConfig    `yaml:"mqtt"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// InputConfig names the TSPLIB problem file.
type InputConfig struct {
	Path string `yaml:"path"`
}

// AnnealConfig holds the annealing schedule.
type AnnealConfig struct {
	InitialRotation float64 `yaml:"initial_rotation"`
	TempInit        float64 `yaml:"temp_init"`
	TempEnd         float64 `yaml:"temp_end"`
	TempSig         float64 `yaml:"temp_sig"`
	BMSigma         float64 `yaml:"bm_sigma"`
	K               float64 `yaml:"k"`
	MaxIterations   int     `yaml:"max_iterations"`
	Seed            int64   `yaml:"seed"`
}

// RenormConfig bounds the refinement.
type RenormConfig struct {
	MaxLevels int `yaml:"max_levels"`
}

// OutputConfig lists the files written after a run. Empty paths are skipped.
type OutputConfig struct {
	Tour string `yaml:"tour,omitempty"`
	SVG  string `yaml:"svg,omitempty"`
	PNG  string `yaml:"png,omitempty"`
	Log  string `yaml:"log,omitempty"`
	// Grid draws the terminal grid of the best rotation in SVG and PNG output.
	Grid bool `yaml:"grid,omitempty"`
}

// MQTTConfig enables the diagnostic stream when Broker is set.
type MQTTConfig struct {
	Broker      string `yaml:"broker,omitempty"`
	ClientID    string `yaml:"client_id,omitempty"`
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	QoS         int    `yaml:"qos"`
	Every       uint64 `yaml:"every,omitempty"`
}

// MetricsConfig enables the Prometheus endpoint when Listen is set.
type MetricsConfig struct {
	Listen string `yaml:"listen,omitempty"`
}

// Default returns the configuration used for omitted fields.
func Default() *Config {
	return &Config{
		Anneal: AnnealConfig{
			TempInit:      10,
			TempEnd:       0.01,
			TempSig:       0.001,
			BMSigma:       1,
			K:             1,
			MaxIterations: 1000,
		},
		Renorm: RenormConfig{MaxLevels: renorm.DefaultMaxLevels},
		MQTT:   MQTTConfig{TopicPrefix: mqttdiag.DefaultPrefix},
	}
}

// Load reads path over Default, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config YAML: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides MQTT settings from MQTT_BROKER, MQTT_CLIENT_ID,
// MQTT_USERNAME, MQTT_PASSWORD and MQTT_PUBLISH_PREFIX when they are set.
func (c *Config) ApplyEnv() {
	for env, dst := range map[string]*string{
		"MQTT_BROKER":         &c.MQTT.Broker,
		"MQTT_CLIENT_ID":      &c.MQTT.ClientID,
		"MQTT_USERNAME":       &c.MQTT.Username,
		"MQTT_PASSWORD":       &c.MQTT.Password,
		"MQTT_PUBLISH_PREFIX": &c.MQTT.TopicPrefix,
	} {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
}

// Validate checks ranges of every section.
func (c *Config) Validate() error {
	if err := c.AnnealParams().Validate(); err != nil {
		return fmt.Errorf("%w: anneal: %w", ErrInvalid, err)
	}
	if c.Renorm.MaxLevels < 1 || c.Renorm.MaxLevels > renorm.MaxLevelsLimit {
		return fmt.Errorf("%w: renorm.max_levels %d not in [1, %d]", ErrInvalid, c.Renorm.MaxLevels, renorm.MaxLevelsLimit)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("%w: mqtt.qos %d not in [0, 2]", ErrInvalid, c.MQTT.QoS)
	}

	return nil
}

// AnnealParams converts the anneal section.
func (c *Config) AnnealParams() anneal.Params {
	a := c.Anneal
	return anneal.Params{
		InitialRotation: a.InitialRotation,
		TempInit:        a.TempInit,
		TempEnd:         a.TempEnd,
		TempSig:         a.TempSig,
		BMSigma:         a.BMSigma,
		K:               a.K,
		MaxIterations:   a.MaxIterations,
		Seed:            a.Seed,
	}
}

// RenormOptions converts the renorm section.
func (c *Config) RenormOptions() renorm.Options {
	return renorm.Options{MaxLevels: c.Renorm.MaxLevels}
}

// MQTTSettings converts the mqtt section.
func (c *Config) MQTTSettings() mqttdiag.Settings {
	return mqttdiag.Settings{
		Broker:   c.MQTT.Broker,
		ClientID: c.MQTT.ClientID,
		Username: c.MQTT.Username,
		Password: c.MQTT.Password,
	}
}

// PublisherOptions converts the mqtt section's topic settings.
func (c *Config) PublisherOptions() []mqttdiag.PublisherOption {
	return []mqttdiag.PublisherOption{
		mqttdiag.WithPrefix(c.MQTT.TopicPrefix),
		mqttdiag.WithQoS(byte(c.MQTT.QoS)),
		mqttdiag.WithEvery(c.MQTT.Every),
	}
}
