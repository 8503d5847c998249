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
	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
	"github.com/nicholasgasior/slidejson-go/units"
)

// PresentationMetadata extracts the slide size and embedded fonts of
// presentation.xml. fallback is used when the part or its sldSz is missing;
// dpi sets the pixel size.
func PresentationMetadata(presentationDoc *xmltree.Node, fallback model.SlideSize, dpi float64) *model.PresentationMetadata {
	root := presentationDoc.Child("presentation")

	size := fallback
	if sldSz := root.Child("sldSz"); sldSz != nil {
		size = model.SlideSize{Width: sldSz.Int("cx", 0), Height: sldSz.Int("cy", 0)}
	}

	meta := &model.PresentationMetadata{
		SlideSize: &size,
		SlideSizePx: &model.PixelSize{
			Width:  units.EMUToPixelsAt(size.Width, dpi),
			Height: units.EMUToPixelsAt(size.Height, dpi),
		},
	}
	for _, ef := range root.Child("embeddedFontLst").Children("embeddedFont") {
		font := ef.Child("font")
		tf := font.String("typeface", "")
		if tf == "" {
			continue
		}
		meta.EmbeddedFonts = append(meta.EmbeddedFonts, model.EmbeddedFont{
			Typeface: tf,
			Charset:  font.String("charset", ""),
		})
	}
	return meta
}
