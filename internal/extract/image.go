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
	"path"
	"strings"

	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
)

// ImageElement builds an image element from an sp whose spPr carries a
// picture fill. Shapes without resolvable media are discarded.
func ImageElement(sp *xmltree.Node, rels *ooxml.RelationshipMap) (*model.ImageElement, bool) {
	spPr := sp.Child("spPr")
	return imageElement(sp.Child("nvSpPr"), spPr, spPr.Child("blipFill"), rels)
}

// PicElement builds an image element from a pic. The blipFill sits directly
// under pic; some producers put it under spPr instead.
func PicElement(pic *xmltree.Node, rels *ooxml.RelationshipMap) (*model.ImageElement, bool) {
	spPr := pic.Child("spPr")
	blipFill := pic.Child("blipFill")
	if blipFill == nil {
		blipFill = spPr.Child("blipFill")
	}
	return imageElement(pic.Child("nvPicPr"), spPr, blipFill, rels)
}

func imageElement(nv, spPr, blipFill *xmltree.Node, rels *ooxml.RelationshipMap) (*model.ImageElement, bool) {
	media := blipMedia(blipFill, rels)
	if media.Image == "" && media.SVG == "" {
		return nil, false
	}
	pos, size := PositionAndSize(spPr)
	return &model.ImageElement{
		ElementCommon: common(nv, model.ElementImage, pos, size),
		Transform:     Transform(spPr),
		Media:         media,
		AltText:       strings.TrimSpace(nv.Child("cNvPr").String("descr", "")),
	}, true
}

// blipMedia resolves the picture references of a blipFill to media file
// names. An SVG declared through the svgBlip extension wins over the raster
// embed's classification.
func blipMedia(blipFill *xmltree.Node, rels *ooxml.RelationshipMap) model.Media {
	var media model.Media
	blip := blipFill.Child("blip")
	if blip == nil {
		return media
	}

	if rel, ok := rels.Get(blip.String("embed", "")); ok {
		name := ooxml.BaseName(rel.Target)
		if isSVG(name) {
			media.SVG = name
		} else {
			media.Image = name
		}
	}

	for _, ext := range blip.Child("extLst").Children("ext") {
		id := ext.Child("svgBlip").String("embed", "")
		if id == "" {
			continue
		}
		if rel, ok := rels.Get(id); ok {
			media.SVG = ooxml.BaseName(rel.Target)
		}
	}
	return media
}

func isSVG(name string) bool {
	return strings.EqualFold(path.Ext(name), ".svg")
}
