//go:build tinygo

package main

import "machine"

const (
	// Sampling configuration
	SAMPLE_INTERVAL_MS = 2  // ADC read interval in milliseconds
	NUM_SAMPLES        = 25 // Number of ADC reads averaged into one output line (50 lines/sec)

	// ADC configuration
	ADC_REFERENCE_MV = 1500 // Photoresistor front end reference in millivolts
	ADC_RESOLUTION   = 12   // ADC resolution in bits (12-bit = 0-4095)

	// Button debounce: a level must be stable this many reads before it is reported
	BUTTON_DEBOUNCE_READS = 10

	// Light sensor and user button pins
	PIN_LIGHT_ADC = machine.A1
	PIN_BUTTON    = machine.D7
	PIN_LED       = machine.LED

	// Serial configuration
	// Line format: "unix_micros,adc,button\n", e.g. "1234567890123456,4095,1\n" = ~24 bytes max
	// 50 lines/sec * 24 bytes = 1,200 bytes/sec, well within 115200 baud
	UART_BAUD_RATE = 115200
)
