// Package calconfig loads the CLI's YAML-backed run configuration,
// grounded on the teacher pack's yaml.v3-backed lookup tables.
package calconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the user-facing knob set for one calibration run.
type Config struct {
	// SPIDevice names the SPI port to open ("" picks the first
	// available port).
	SPIDevice string `yaml:"spi_device"`

	// BandwidthHz is the calibration bandwidth passed to
	// Calibrator.SetBandwidthRF.
	BandwidthHz float64 `yaml:"bandwidth_hz"`

	// CalibrateTx and CalibrateRx select which directions to run.
	CalibrateTx bool `yaml:"calibrate_tx"`
	CalibrateRx bool `yaml:"calibrate_rx"`

	// Verbose enables per-phase logging during the run.
	Verbose bool `yaml:"verbose"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		BandwidthHz: 5e6,
		CalibrateTx: true,
		CalibrateRx: true,
	}
}

// Load reads and parses a YAML config file, starting from Default()
// so a partial file only overrides the fields it names.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("calconfig: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("calconfig: %w", err)
	}
	return cfg, nil
}
