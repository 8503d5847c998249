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

package extract

import (
	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
)

// ShapeKind is what an sp turns into.
type ShapeKind int

const (
	Unrecognized ShapeKind = iota
	TextCandidate
	ImageCandidate
)

func (k ShapeKind) String() string {
	switch k {
	case TextCandidate:
		return "text"
	case ImageCandidate:
		return "image"
	}
	return "unrecognized"
}

// ClassifyShape decides whether an sp becomes a text element, an image
// element or nothing. Text wins when a shape has both.
func ClassifyShape(sp *xmltree.Node, rels *ooxml.RelationshipMap) ShapeKind {
	if TextContent(sp.Child("txBody")) != "" {
		return TextCandidate
	}
	media := blipMedia(sp.Path("spPr", "blipFill"), rels)
	if media.Image != "" || media.SVG != "" {
		return ImageCandidate
	}
	return Unrecognized
}

// shapeElement converts an sp according to its classification.
func shapeElement(sp *xmltree.Node, rels *ooxml.RelationshipMap, opts Options) (model.Element, bool) {
	switch ClassifyShape(sp, rels) {
	case TextCandidate:
		el, ok := TextElement(sp)
		if !ok {
			return nil, false
		}
		el.Formatting.FontFamily = resolveThemeFont(el.Formatting.FontFamily, opts.Fonts)
		return el, true
	case ImageCandidate:
		el, ok := ImageElement(sp, rels)
		if !ok {
			return nil, false
		}
		return el, true
	}
	return nil, false
}
