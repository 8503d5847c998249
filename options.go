// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package slidejson

import (
	"log/slog"

	"github.com/nicholasgasior/slidejson-go/model"
)

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger for recovered problems and part resolution.
// A nil logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		c.logger = l
	}
}

// WithWorkers converts slides of a deck on n workers. Values below 2 keep
// conversion sequential.
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}

// WithGroupScaling applies the ext/chExt scale of group shapes to their
// children. By default children are only offset.
func WithGroupScaling(enabled bool) Option {
	return func(c *Converter) {
		c.groupScaling = enabled
	}
}

// WithGroupClipping clips group children to the group's visual bounds.
func WithGroupClipping(enabled bool) Option {
	return func(c *Converter) {
		c.groupClipping = enabled
	}
}

// WithSlideSize sets the slide size used when presentation.xml declares none.
func WithSlideSize(width, height int64) Option {
	return func(c *Converter) {
		c.slideSize = model.SlideSize{Width: width, Height: height}
	}
}

// WithDPI sets the resolution of the pixel slide size (default: 96).
func WithDPI(dpi float64) Option {
	return func(c *Converter) {
		if dpi > 0 {
			c.dpi = dpi
		}
	}
}

// WithNotes configures whether speaker notes are attached (default: true).
func WithNotes(enabled bool) Option {
	return func(c *Converter) {
		c.notes = enabled
	}
}

// WithConfig applies every setting of cfg. Options given after it win.
func WithConfig(cfg Config) Option {
	return func(c *Converter) {
		WithDPI(cfg.DPI)(c)
		if cfg.SlideWidth > 0 && cfg.SlideHeight > 0 {
			WithSlideSize(cfg.SlideWidth, cfg.SlideHeight)(c)
		}
		c.workers = cfg.Workers
		c.groupScaling = cfg.GroupScaling
		c.groupClipping = cfg.GroupClipping
		c.notes = cfg.Notes
	}
}
