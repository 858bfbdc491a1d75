package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/golux/pkg/config"
)

func testMockConfig() *config.MockConfig {
	return &config.MockConfig{
		Base:         1000,
		Amplitude:    200,
		NoiseLevel:   20,
		Period:       10 * time.Second,
		ButtonPeriod: 0,
		SampleRate:   5 * time.Millisecond,
	}
}

func TestMock_LightLevelWithinBounds(t *testing.T) {
	m := NewMock(testMockConfig())

	for i := 0; i < 200; i++ {
		elapsed := time.Duration(i) * 100 * time.Millisecond
		level := m.lightLevel(elapsed, uint32(i))
		assert.GreaterOrEqual(t, level, uint16(1000-200-20))
		assert.LessOrEqual(t, level, uint16(1000+200+20))
	}
}

func TestMock_LightLevelClamped(t *testing.T) {
	cfg := testMockConfig()
	cfg.Base = 5000
	m := NewMock(cfg)
	assert.Equal(t, uint16(MaxADC), m.lightLevel(0, 0))

	cfg.Base = -5000
	assert.Equal(t, uint16(0), m.lightLevel(0, 0))
}

func TestMock_ButtonPeriod(t *testing.T) {
	cfg := testMockConfig()
	cfg.ButtonPeriod = time.Second
	m := NewMock(cfg)

	start := time.Now()
	m.lastButton = start

	assert.False(t, m.buttonPressed(start.Add(500*time.Millisecond)))
	assert.True(t, m.buttonPressed(start.Add(time.Second)))
	assert.False(t, m.buttonPressed(start.Add(1500*time.Millisecond)))
	assert.True(t, m.buttonPressed(start.Add(2*time.Second)))
}

func TestMock_ButtonDisabled(t *testing.T) {
	m := NewMock(testMockConfig())
	assert.False(t, m.buttonPressed(time.Now().Add(time.Hour)))
}

func TestMock_ConnectTwice(t *testing.T) {
	m := NewMock(testMockConfig())
	require.NoError(t, m.Connect())
	defer m.Close()

	assert.True(t, m.IsConnected())
	assert.ErrorIs(t, m.Connect(), ErrAlreadyConnected)
}

func TestNewMock_NilConfig(t *testing.T) {
	m := NewMock(nil)
	require.NotNil(t, m.cfg)
	assert.Equal(t, config.Default().Mock.SampleRate, m.cfg.SampleRate)
}

// TestMock_GracefulShutdown tests that Mock device closes samples channel
// when Close() is called.
func TestMock_GracefulShutdown(t *testing.T) {
	mock := NewMock(testMockConfig())
	require.NoError(t, mock.Connect())

	samples := mock.Samples()

	received := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		for range samples {
			received++
			if received == 3 {
				mock.Close()
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Samples channel did not close within timeout")
	}

	assert.GreaterOrEqual(t, received, 3, "Should receive samples before channel closes")
	assert.False(t, mock.IsConnected())

	_, ok := <-samples
	assert.False(t, ok, "Channel should be closed")
}

func TestMock_NonPositiveSampleRate(t *testing.T) {
	cfg := testMockConfig()
	cfg.SampleRate = -time.Second
	m := NewMock(cfg)

	require.NoError(t, m.Connect())
	defer m.Close()

	select {
	case _, ok := <-m.Samples():
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("no sample generated")
	}
}
