// Command lms7002m-cal drives one Tx and/or Rx calibration run against
// a transceiver reachable over SPI.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/swdee/go-lms7002m-cal"
	"github.com/swdee/go-lms7002m-cal/calconfig"
	"github.com/swdee/go-lms7002m-cal/spibus"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "", "path to a YAML run configuration")
		spiDevice  = pflag.StringP("spi", "s", "", "SPI port name (empty selects the first available port)")
		bandwidth  = pflag.Float64P("bandwidth", "b", 0, "calibration bandwidth in Hz (0 keeps the config/default value)")
		verbose    = pflag.BoolP("verbose", "v", false, "log calibration phase transitions")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags]\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cfg := calconfig.Default()
	if *configPath != "" {
		loaded, err := calconfig.Load(*configPath)
		if err != nil {
			log.Fatalf("lms7002m-cal: %v", err)
		}
		cfg = loaded
	}
	if *spiDevice != "" {
		cfg.SPIDevice = *spiDevice
	}
	if *bandwidth != 0 {
		cfg.BandwidthHz = *bandwidth
	}
	if *verbose {
		cfg.Verbose = true
	}

	bus, err := spibus.Open(cfg.SPIDevice)
	if err != nil {
		log.Fatalf("lms7002m-cal: %v", err)
	}
	defer bus.Close()

	logger := log.New(io.Discard, "", 0)
	if cfg.Verbose {
		logger = log.New(os.Stderr, "lms7002m-cal: ", log.LstdFlags)
	}

	cal := lms7002m.NewWithLog(bus, logger)
	cal.SetBandwidthRF(cfg.BandwidthHz)

	if cfg.CalibrateTx {
		status, report, err := cal.CalibrateTx()
		if err != nil {
			log.Fatalf("lms7002m-cal: tx calibration: %v", err)
		}
		fmt.Printf("tx calibration: %s\n", status)
		if status == lms7002m.StatusOK {
			fmt.Print(report)
		}
	}

	if cfg.CalibrateRx {
		status, report, err := cal.CalibrateRx()
		if err != nil {
			log.Fatalf("lms7002m-cal: rx calibration: %v", err)
		}
		fmt.Printf("rx calibration: %s\n", status)
		if status == lms7002m.StatusOK {
			fmt.Print(report)
		}
	}
}
