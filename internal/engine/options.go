package engine

import (
	"github.com/charmbracelet/log"

	"github.com/Sebkah/99draft-sub000/internal/config"
)

// Option configures a Document during creation.
type Option func(*Document)

// WithContent sets the initial content of the document.
func WithContent(content string) Option {
	return func(d *Document) {
		d.initContent = content
	}
}

// WithConfig sets the configuration the document is built from: logging
// level, buffer tuning, and the style axes to track.
func WithConfig(cfg *config.Config) Option {
	return func(d *Document) {
		if cfg != nil {
			d.cfg = cfg
		}
	}
}

// WithLogger sets the logger, overriding the configured logging level.
func WithLogger(logger *log.Logger) Option {
	return func(d *Document) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithID sets the document identifier stamped on edit notifications.
// By default a random UUID is assigned.
func WithID(id string) Option {
	return func(d *Document) {
		if id != "" {
			d.id = id
		}
	}
}
