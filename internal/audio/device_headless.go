//go:build headless

package audio

func newDeviceOutput(sampleRate int) (Output, error) {
	return nil, ErrNoDevice
}
