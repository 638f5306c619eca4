package telemetry

import "errors"

// Sentinel errors for container masking.
var (
	// ErrMissingChannel indicates a channel id without a matching
	// measurement field or auxiliary entry in the container.
	ErrMissingChannel = errors.New("telemetry: channel data missing from container")
	// ErrLengthMismatch indicates an array whose length differs from the
	// mask length.
	ErrLengthMismatch = errors.New("telemetry: array length differs from mask length")
)

// measurementFields are the per-channel measurement kinds, in container
// key order.
var measurementFields = [...]string{"tmi", "rfi", "rfi_usb", "isi", "isi_usb"}

// Telemetry is a per-channel field container.
//
//   - Measurements holds the interferometric arrays, keyed
//     "<field>_<channel>" for each field in tmi, rfi, rfi_usb, isi,
//     isi_usb.
//   - PseudoRanges and PseudoRangeDerivs are keyed by channel id alone.
type Telemetry struct {
	Measurements      map[string][]float64
	PseudoRanges      map[string][]float64
	PseudoRangeDerivs map[string][]float64
}

// MeasurementKeys returns the five measurement keys of one channel, in
// container key order.
func MeasurementKeys(channel string) []string {
	keys := make([]string, len(measurementFields))
	for i, f := range measurementFields {
		keys[i] = f + "_" + channel
	}
	return keys
}
