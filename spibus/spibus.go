// Package spibus implements an lms7002m.Device over a real SPI bus
// using periph.io, the transport library used elsewhere in the
// reference pack for exactly this kind of register/display chip
// wiring.
package spibus

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/swdee/go-lms7002m-cal"
)

// Bus is a concrete lms7002m.Device backed by a SPI port. The LMS7002M
// SPI register protocol is a 16-bit address+R/W word followed by a
// 16-bit data word.
type Bus struct {
	port spi.PortCloser
	conn spi.Conn

	mu sync.Mutex

	cgenHz float64
	sxHz   [2]float64
}

// Open opens the named SPI port ("" picks the first available port,
// matching spireg.Open's own convention) at a conservative clock
// suitable for register access rather than bulk transfer.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("spibus: %w", err)
	}
	p, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("spibus: %w", err)
	}
	conn, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 16)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("spibus: %w", err)
	}
	return &Bus{port: p, conn: conn, cgenHz: 122.88e6}, nil
}

// Close releases the underlying SPI port.
func (b *Bus) Close() error {
	return b.port.Close()
}

// ReadReg issues a register read: the address word with its top bit
// clear, followed by a dummy word whose reply carries the data.
func (b *Bus) ReadReg(addr uint16) (uint16, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := []byte{byte(addr >> 8), byte(addr), 0x00, 0x00}
	rx := make([]byte, len(tx))
	if err := b.conn.Tx(tx, rx); err != nil {
		return 0, fmt.Errorf("spibus: read 0x%04X: %w", addr, err)
	}
	return uint16(rx[2])<<8 | uint16(rx[3]), nil
}

// WriteReg issues a register write: the address word with its top bit
// set, followed by the data word.
func (b *Bus) WriteReg(addr uint16, val uint16) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	wordAddr := addr | 0x8000
	tx := []byte{byte(wordAddr >> 8), byte(wordAddr), byte(val >> 8), byte(val)}
	if err := b.conn.Tx(tx, nil); err != nil {
		return fmt.Errorf("spibus: write 0x%04X: %w", addr, err)
	}
	return nil
}

// FrequencyCGEN, SetFrequencyCGEN, FrequencySX, SetFrequencySX and
// SetNCOFrequency model the PLL/NCO tuning collaborator locally: the
// PLL math itself is out of scope (the spec treats it as an opaque
// externally-supplied service), so this package tracks the commanded
// frequencies and reports success, giving the dependency a concrete
// home without reimplementing synthesizer tuning.
func (b *Bus) FrequencyCGEN() (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cgenHz, nil
}

func (b *Bus) SetFrequencyCGEN(hz float64) (lms7002m.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cgenHz = hz
	return lms7002m.StatusOK, nil
}

func (b *Bus) FrequencySX(dir lms7002m.Direction) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sxHz[dir], nil
}

func (b *Bus) SetFrequencySX(dir lms7002m.Direction, hz float64) (lms7002m.Status, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sxHz[dir] = hz
	return lms7002m.StatusOK, nil
}

func (b *Bus) SetNCOFrequency(dir lms7002m.Direction, hz float64) error {
	return nil
}
