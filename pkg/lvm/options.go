package lvm

import (
	"io"
	"log/slog"
)

// Options configures LVM decoding.
type Options struct {
	// AllowUnknownFields skips header keys outside the schema instead of
	// failing with ErrUnknownField. Skipped keys are logged as warnings.
	// Default: false
	AllowUnknownFields bool

	// Logger receives debug records for decoded headers and segments, and
	// warnings for tolerated irregularities.
	// Default: nil (logging disabled)
	Logger *slog.Logger
}

// DefaultOptions returns the default decoding configuration.
func DefaultOptions() Options {
	return Options{
		AllowUnknownFields: false,
		Logger:             nil,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
