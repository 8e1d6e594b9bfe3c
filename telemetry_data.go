// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"encoding/json"
	"time"
)

// TelemetryData holds the telemetry data of one opened archive.
type TelemetryData struct {
	// Decoder is the package that decoded the compression layer
	Decoder string `json:"decoder"`

	// DeclaredSize is the sum of the sizes declared in the entry headers
	DeclaredSize int64 `json:"declared_size"`

	// Duration is the time between opening and closing the archive
	Duration time.Duration `json:"duration"`

	// Entries is the number of entries returned by the iterator
	Entries int64 `json:"entries"`

	// Errors is the number of errors returned while reading the archive
	Errors int64 `json:"errors"`

	// Format is the name of the archive format
	Format string `json:"format"`

	// InputSize is the number of bytes read from the archive file
	InputSize int64 `json:"input_size"`

	// LastError is the last error returned while reading the archive
	LastError error `json:"last_error"`

	// ReadSize is the number of entry content bytes read by the caller
	ReadSize int64 `json:"read_size"`
}

// String returns a string representation of [TelemetryData].
func (m TelemetryData) String() string {
	b, _ := json.Marshal(m)
	return string(b)
}

// MarshalJSON implements the [encoding/json.Marshaler] interface.
func (m TelemetryData) MarshalJSON() ([]byte, error) {
	var lastError string
	if m.LastError != nil {
		lastError = m.LastError.Error()
	}

	type Alias TelemetryData
	return json.Marshal(&struct {
		LastError string `json:"last_error"`
		*Alias
	}{
		LastError: lastError,
		Alias:     (*Alias)(&m),
	})
}

// TelemetryHook is a function type that performs operations on [TelemetryData]
// after an archive has been closed, e.g. submitting it to a telemetry service.
type TelemetryHook func(*TelemetryData)

// Equals returns true if the given [TelemetryData] is equal to the receiver.
// Duration and the last error are not compared.
func (td *TelemetryData) Equals(other *TelemetryData) bool {
	if td == nil && other == nil {
		return true
	}
	if td == nil || other == nil {
		return false
	}
	return td.Decoder == other.Decoder &&
		td.DeclaredSize == other.DeclaredSize &&
		td.Entries == other.Entries &&
		td.Errors == other.Errors &&
		td.Format == other.Format &&
		td.InputSize == other.InputSize &&
		td.ReadSize == other.ReadSize
}

// captureError counts err and remembers it as the last error.
func (td *TelemetryData) captureError(err error) {
	if err == nil {
		return
	}
	td.Errors++
	td.LastError = err
}
