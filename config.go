// Copyright IBM Corp. 2023, 2025
// SPDX-License-Identifier: MPL-2.0

package archive

import (
	"io"
	"log/slog"
)

// ConfigOption is a function pointer to implement the option pattern
type ConfigOption func(*Config)

// Config provides a configuration struct and options to adjust the configuration.
//
// The configuration struct holds all options for reading an archive. The
// options can be adjusted using the option pattern style.
type Config struct {
	// format forces the format of the archive instead of detecting
	// it from the file name
	format Format

	// logger stream for reading the archive
	logger logger

	// maxEntries is the maximum of entries (including folder and symlinks) in an archive.
	// Set value to -1 to disable the check.
	maxEntries int64

	// maxInputSize is the maximum number of bytes read from the archive file.
	// Set value to -1 to disable the check.
	maxInputSize int64

	// telemetryHook is a function to consume telemetry data after the archive is closed
	telemetryHook TelemetryHook
}

// CheckMaxEntries checks if counter exceeds the configured maximum. If the
// maximum is exceeded, [ErrMaxEntriesExceeded] is returned.
func (c *Config) CheckMaxEntries(counter int64) error {

	// check if disabled
	if c.MaxEntries() == -1 {
		return nil
	}

	// check value
	if counter > c.MaxEntries() {
		return ErrMaxEntriesExceeded
	}
	return nil
}

// Format returns the forced format and true, or false if the format is
// detected from the file name.
func (c *Config) Format() (Format, bool) {
	return c.format, c.format != formatUnknown
}

// Logger returns the logger.
func (c *Config) Logger() logger {
	return c.logger
}

// MaxEntries returns the maximum of entries (including folder and symlinks)
// that are read from an archive.
func (c *Config) MaxEntries() int64 {
	return c.maxEntries
}

// MaxInputSize returns the maximum number of bytes read from the archive
// file.
func (c *Config) MaxInputSize() int64 {
	return c.maxInputSize
}

// TelemetryHook returns the telemetry hook.
func (c *Config) TelemetryHook() TelemetryHook {
	if c.telemetryHook == nil {
		return defaultTelemetryHook
	}
	return c.telemetryHook
}

const (
	defaultFormat       = formatUnknown // detect format from file name
	defaultMaxEntries   = -1            // no limit
	defaultMaxInputSize = -1            // no limit
)

var (
	// slog to discard
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	// no operation telemetry hook
	defaultTelemetryHook = func(d *TelemetryData) {
		// noop
	}
)

// NewConfig is a generator option that takes opts as adjustments of the
// default configuration in an option pattern style.
func NewConfig(opts ...ConfigOption) *Config {

	// setup default values
	config := &Config{
		format:        defaultFormat,
		logger:        defaultLogger,
		maxEntries:    defaultMaxEntries,
		maxInputSize:  defaultMaxInputSize,
		telemetryHook: defaultTelemetryHook,
	}

	// Loop through each option
	for _, opt := range opts {
		opt(config)
	}

	return config
}

// WithFormat options pattern function to read the archive as format f
// instead of detecting the format from the file name. If f is not enabled,
// [Open] fails with an [*UnsupportedFormatError].
func WithFormat(f Format) ConfigOption {
	return func(c *Config) {
		c.format = f
	}
}

// WithLogger options pattern function to set a custom logger.
func WithLogger(logger logger) ConfigOption {
	return func(c *Config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxEntries options pattern function to set the maximum number of
// entries that are read from an archive. (-1 to disable check)
func WithMaxEntries(maxEntries int64) ConfigOption {
	return func(c *Config) {
		c.maxEntries = maxEntries
	}
}

// WithMaxInputSize options pattern function to set the maximum number of
// bytes read from the archive file. (-1 to disable check)
func WithMaxInputSize(maxInputSize int64) ConfigOption {
	return func(c *Config) {
		c.maxInputSize = maxInputSize
	}
}

// WithTelemetryHook options pattern function to set a [TelemetryHook], which
// is called when the archive is closed.
func WithTelemetryHook(hook TelemetryHook) ConfigOption {
	return func(c *Config) {
		c.telemetryHook = hook
	}
}
