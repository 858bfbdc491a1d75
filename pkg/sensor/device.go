// Package sensor talks to the light sensor board over a serial line, or simulates one.
package sensor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the standard baud rate of the sensor firmware.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the samples channel buffer.
	DefaultBufferSize = 100
	// MaxADC is the largest value of the 12-bit ADC.
	MaxADC = 4095
)

var (
	// ErrAlreadyConnected is returned by Connect on a connected device.
	ErrAlreadyConnected = errors.New("already connected")
)

// RawSample represents a raw measurement sample from the MCU.
type RawSample struct {
	Timestamp time.Time
	ADC       uint16 // 12-bit photoresistor ADC reading (0-4095)
	Button    bool   // User button state at sampling time
}

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Serial represents a connection to the sensor MCU.
type Serial struct {
	port     string
	baudRate int
	bufSize  int

	conn      serial.Port
	samples   chan RawSample
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// New creates a new Serial device with the specified port, baud rate, and buffer size.
func New(port string, baudRate int, bufSize int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		bufSize:  bufSize,
		samples:  make(chan RawSample, bufSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(ports))
	for _, name := range ports {
		result = append(result, Port{
			Name:        name,
			Description: name,
		})
	}

	return result, nil
}

// Connect connects to the serial port and starts reading samples.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return ErrAlreadyConnected
	}

	port, err := serial.Open(d.port, &serial.Mode{BaudRate: d.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go d.readSamples(port)

	return nil
}

// Close closes the connection. The samples channel is closed once the reader exits.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.WithError(err).Warn("error closing serial port")
		}
		d.conn = nil
	}

	d.connected = false

	return nil
}

// Samples returns the channel for reading samples.
func (d *Serial) Samples() <-chan RawSample {
	return d.samples
}

// IsConnected returns whether the device is currently connected.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// readSamples reads lines from the serial port and parses them into RawSample.
func (d *Serial) readSamples(r io.Reader) {
	defer close(d.samples)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic in readSamples: %v", r)
		}
	}()

	scanLines(d.ctx, r, d.samples)
}

// scanLines parses lines from r into out until r is exhausted or ctx is done.
func scanLines(ctx context.Context, r io.Reader, out chan<- RawSample) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		sample, err := parseLine(line)
		if err != nil {
			log.WithField("line", line).WithError(err).Debug("failed to parse line")
			continue
		}

		select {
		case out <- sample:
		case <-ctx.Done():
			return
		default:
			log.Warn("samples channel full, dropping sample")
		}
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("error reading from serial port")
	}
}

// parseLine parses a line from the MCU into a RawSample.
// Format: unix_micros,adc,button
// Example: 1234567890123,2048,1
func parseLine(line string) (RawSample, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return RawSample{}, fmt.Errorf("invalid line format: expected 3 comma-separated values, got %d", len(parts))
	}

	timestampMicros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return RawSample{}, fmt.Errorf("invalid timestamp: %w", err)
	}

	adc, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return RawSample{}, fmt.Errorf("invalid adc reading: %w", err)
	}
	if adc > MaxADC {
		return RawSample{}, fmt.Errorf("adc reading out of range: %d (max %d)", adc, MaxADC)
	}

	var button bool
	switch parts[2] {
	case "0":
	case "1":
		button = true
	default:
		return RawSample{}, fmt.Errorf("invalid button state %q", parts[2])
	}

	return RawSample{
		Timestamp: time.UnixMicro(timestampMicros),
		ADC:       uint16(adc),
		Button:    button,
	}, nil
}
