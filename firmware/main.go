//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"
	"time"
)

var (
	adcLight machine.ADC
	uart     = machine.UART0

	// ADC averaging - running sum and count
	lightSum   uint32
	lightCount int

	// Debounced button state
	buttonState  bool
	buttonStable int

	// Timing
	lastADCRead time.Time
)

func main() {
	PIN_BUTTON.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	PIN_LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
	PIN_LIGHT_ADC.Configure(machine.PinConfig{Mode: machine.PinInput})

	adcLight = machine.ADC{Pin: PIN_LIGHT_ADC}
	adcLight.Configure(machine.ADCConfig{
		Reference:  ADC_REFERENCE_MV,
		Resolution: ADC_RESOLUTION,
	})

	uart.Configure(machine.UARTConfig{
		BaudRate: UART_BAUD_RATE,
	})

	lastADCRead = time.Now()

	for {
		now := time.Now()

		if now.Sub(lastADCRead) >= time.Duration(SAMPLE_INTERVAL_MS)*time.Millisecond {
			readLight()
			readButton()
			lastADCRead = now
		}

		if lightCount >= NUM_SAMPLES {
			outputAveragedValue()
			lightSum = 0
			lightCount = 0
		}

		time.Sleep(100 * time.Microsecond)
	}
}

func readLight() {
	// machine.ADC.Get scales to 16 bits; keep the 12 significant ones.
	lightSum += uint32(adcLight.Get() >> 4)
	lightCount++
}

// readButton debounces the active-low button.
func readButton() {
	pressed := !PIN_BUTTON.Get()
	if pressed == buttonState {
		buttonStable = 0
		return
	}

	buttonStable++
	if buttonStable >= BUTTON_DEBOUNCE_READS {
		buttonState = pressed
		buttonStable = 0
		PIN_LED.Set(pressed)
	}
}

func outputAveragedValue() {
	n := lightCount
	if n == 0 {
		n = 1 // Avoid division by zero
	}
	avg := uint16(lightSum / uint32(n))

	// Output format: "unix_micros,adc,button\n"
	// Example: "1234567890123,2048,0\n"
	print(time.Now().UnixNano() / 1000)
	print(",")
	print(avg)
	print(",")
	if buttonState {
		print("1")
	} else {
		print("0")
	}
	print("\n")
}
