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

// Package extract turns parsed slide, layout, master, theme and presentation
// parts into model values. Nothing here performs I/O or returns errors for
// missing data; absent nodes fall back to documented defaults.
package extract

import (
	"github.com/nicholasgasior/slidejson-go/internal/ooxml"
	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
)

// Options tunes element extraction.
type Options struct {
	// GroupScaling applies the ext/chExt scale of groups to their children.
	// Off, children are only offset by off - chOff.
	GroupScaling bool
	// ClipToGroup trims group children to the group's visual bounds.
	ClipToGroup bool
	// Fonts resolves theme font references in run properties. May be nil.
	Fonts *model.ThemeFonts
}

// Elements extracts the visual elements of a slide. Pictures come first,
// then the contents of groups, then plain shapes; each category keeps
// document order.
func Elements(slideDoc *xmltree.Node, rels *ooxml.RelationshipMap, opts Options) []model.Element {
	out := []model.Element{}
	spTree := slideDoc.Path("sld", "cSld", "spTree")
	if spTree == nil {
		return out
	}

	for _, pic := range spTree.Children("pic") {
		if el, ok := PicElement(pic, rels); ok {
			out = append(out, el)
		}
	}
	for _, grp := range spTree.Children("grpSp") {
		out = append(out, flattenGroup(grp, rels, identity, opts)...)
	}
	for _, sp := range spTree.Children("sp") {
		if el, ok := shapeElement(sp, rels, opts); ok {
			out = append(out, el)
		}
	}
	return out
}

// GroupElements flattens a grpSp into its leaf elements, offset by inherited.
func GroupElements(grpSp *xmltree.Node, rels *ooxml.RelationshipMap, inherited model.Position, opts Options) []model.Element {
	return flattenGroup(grpSp, rels, offsetFrame(inherited), opts)
}

func flattenGroup(grpSp *xmltree.Node, rels *ooxml.RelationshipMap, f frame, opts Options) []model.Element {
	g := readGroupXfrm(grpSp.Child("grpSpPr"))
	children, nested := f.enter(g, opts.GroupScaling)
	boundsPos, boundsSize := f.place(g.off, g.ext)

	out := []model.Element{}
	add := func(el model.Element) {
		c := el.Common()
		c.Position, c.Size = children.place(c.Position, c.Size)
		if opts.ClipToGroup {
			c.Position, c.Size = clipToBounds(c.Position, c.Size, boundsPos, boundsSize)
		}
		out = append(out, el)
	}

	for _, pic := range grpSp.Children("pic") {
		if el, ok := PicElement(pic, rels); ok {
			add(el)
		}
	}
	for _, sp := range grpSp.Children("sp") {
		if el, ok := shapeElement(sp, rels, opts); ok {
			add(el)
		}
	}
	for _, inner := range grpSp.Children("grpSp") {
		out = append(out, flattenGroup(inner, rels, nested, opts)...)
	}
	return out
}
