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
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nicholasgasior/slidejson-go/internal/extract"
	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
)

const (
	presentationPart  = "ppt/presentation.xml"
	defaultMasterPart = "ppt/slideMasters/slideMaster1.xml"
	defaultThemePart  = "ppt/theme/theme1.xml"
)

// SlidePart returns the part name of slide n.
func SlidePart(n int) string {
	return fmt.Sprintf("ppt/slides/slide%d.xml", n)
}

// ConvertSlide converts slide n of pkg. A slide without a part is a
// MissingPartError; a slide part that does not parse is a MalformedXMLError.
// Missing relationships, layouts, masters and themes are not errors.
func (c *Converter) ConvertSlide(ctx context.Context, pkg Package, n int) (*model.SlideJSON, error) {
	log := c.logger.With("slide", n)
	return c.convertSlide(ctx, pkg, n, c.presentationMetadata(pkg, log), log)
}

func (c *Converter) convertSlide(ctx context.Context, pkg Package, n int, meta *model.PresentationMetadata, log *slog.Logger) (*model.SlideJSON, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	slidePath := SlidePart(n)
	data, err := pkg.ReadEntry(slidePath)
	if err != nil {
		if errors.Is(err, ooxml.ErrPartNotFound) {
			return nil, &MissingPartError{Part: slidePath, SlideNumber: n}
		}
		return nil, fmt.Errorf("read %s: %w", slidePath, err)
	}
	doc, err := xmltree.Parse(data)
	if err != nil {
		return nil, &MalformedXMLError{Part: slidePath, Err: err}
	}
	rels := c.relationships(pkg, slidePath, log)

	// slide -> layout -> master -> theme
	var layoutDoc *xmltree.Node
	masterPath := defaultMasterPart
	if rel, ok := rels.FirstOfType(ooxml.RelTypeSlideLayout); ok {
		layoutPath := ooxml.ResolveTarget(slidePath, rel.Target)
		layoutDoc = c.optionalPart(pkg, layoutPath, log)
		if m, ok := c.relationships(pkg, layoutPath, log).FirstOfType(ooxml.RelTypeSlideMaster); ok {
			masterPath = ooxml.ResolveTarget(layoutPath, m.Target)
		}
	}
	masterDoc := c.optionalPart(pkg, masterPath, log)

	themePath := defaultThemePart
	if rel, ok := c.relationships(pkg, masterPath, log).FirstOfType(ooxml.RelTypeTheme); ok {
		themePath = ooxml.ResolveTarget(masterPath, rel.Target)
	}
	theme := c.theme(pkg, themePath, log)
	master := extract.MasterSlide(masterDoc)

	var colorMap map[string]string
	if master != nil {
		colorMap = master.ColorMap
	}
	opts := extract.Options{
		GroupScaling: c.groupScaling,
		ClipToGroup:  c.groupClipping,
	}
	if theme != nil {
		opts.Fonts = &theme.Fonts
	}

	slide := &model.SlideJSON{
		SlideNumber:          n,
		Background:           extract.Background(doc, extract.BuildScheme(theme, colorMap)),
		Elements:             extract.Elements(doc, rels, opts),
		Layout:               extract.Layout(rels, layoutDoc),
		Theme:                theme,
		MasterSlide:          master,
		PresentationMetadata: meta.Clone(),
	}

	if bg := &slide.Background; bg.Type == model.BackgroundImage {
		if rel, ok := rels.Get(bg.EmbedID); ok {
			bg.Image = ooxml.BaseName(rel.Target)
		}
	}

	if c.notes {
		if rel, ok := rels.FirstOfType(ooxml.RelTypeNotesSlide); ok {
			notesDoc := c.optionalPart(pkg, ooxml.ResolveTarget(slidePath, rel.Target), log)
			slide.Notes = extract.Notes(notesDoc)
		}
	}

	log.Debug("slide converted", "elements", len(slide.Elements), "layout", slide.Layout.Reference)
	return slide, nil
}

// presentationMetadata reads deck-wide metadata. A missing or malformed
// presentation part falls back to the configured slide size.
func (c *Converter) presentationMetadata(pkg Package, log *slog.Logger) *model.PresentationMetadata {
	return extract.PresentationMetadata(c.optionalPart(pkg, presentationPart, log), c.slideSize, c.dpi)
}

// relationships reads the rels sidecar of part. A malformed sidecar is
// logged and treated as empty.
func (c *Converter) relationships(pkg Package, part string, log *slog.Logger) *ooxml.RelationshipMap {
	rels, err := ooxml.ReadRelationships(pkg, part)
	if err != nil {
		log.Warn("ignoring relationships", "part", part, "error", err)
		return ooxml.NewRelationshipMap()
	}
	return rels
}

// optionalPart parses a part the slide can do without. It returns nil when
// the part is absent or unparsable.
func (c *Converter) optionalPart(pkg Package, part string, log *slog.Logger) *xmltree.Node {
	data, err := pkg.ReadEntry(part)
	if err != nil {
		if errors.Is(err, ooxml.ErrPartNotFound) {
			log.Debug("optional part not found", "part", part)
		} else {
			log.Warn("optional part unreadable", "part", part, "error", err)
		}
		return nil
	}
	doc, err := xmltree.Parse(data)
	if err != nil {
		log.Warn("optional part malformed", "part", part, "error", err)
		return nil
	}
	return doc
}

func (c *Converter) theme(pkg Package, part string, log *slog.Logger) *model.Theme {
	data, err := pkg.ReadEntry(part)
	if err != nil {
		log.Debug("theme not found", "part", part)
		return nil
	}
	theme, err := extract.Theme(data)
	if err != nil {
		log.Warn("theme malformed", "part", part, "error", err)
		return nil
	}
	return theme
}
