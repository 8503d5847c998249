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
	"github.com/nicholasgasior/slidejson-go/units"
)

// LayoutUnknown fills Layout fields that could not be determined.
const LayoutUnknown = "unknown"

// Layout names the slide's layout part and, when the parsed layout is given,
// its type and placeholders.
func Layout(rels *ooxml.RelationshipMap, layoutDoc *xmltree.Node) model.Layout {
	rel, ok := rels.FirstOfType(ooxml.RelTypeSlideLayout)
	if !ok {
		return model.Layout{Type: LayoutUnknown, Reference: LayoutUnknown}
	}

	out := model.Layout{Type: LayoutUnknown, Reference: ooxml.BaseName(rel.Target)}
	if out.Reference == "" || out.Reference == "." {
		out.Reference = LayoutUnknown
	}

	root := layoutDoc.Child("sldLayout")
	if root == nil {
		return out
	}
	out.Placeholders = LayoutPlaceholders(root.Path("cSld", "spTree"))
	if t := root.String("type", ""); t != "" {
		out.Type = t
	} else {
		out.Type = ClassifyLayout(out.Placeholders)
	}
	return out
}

// LayoutPlaceholders lists the placeholder shapes of a shape tree, descending
// into groups.
func LayoutPlaceholders(spTree *xmltree.Node) []model.LayoutPlaceholder {
	var out []model.LayoutPlaceholder
	for _, sp := range spTree.Children("sp") {
		ph := sp.Path("nvSpPr", "nvPr", "ph")
		if ph == nil {
			continue
		}
		p := model.LayoutPlaceholder{
			Type: ph.String("type", ""),
			Size: ph.String("sz", ""),
		}
		if idx, ok := ph.Attr("idx"); ok {
			i := int(units.ParseInt(idx, 0))
			p.Index = &i
		}
		out = append(out, p)
	}
	for _, grp := range spTree.Children("grpSp") {
		out = append(out, LayoutPlaceholders(grp)...)
	}
	return out
}

// ClassifyLayout guesses an ST_SlideLayoutType from placeholder counts.
// Date, footer, header and slide number slots are ignored.
func ClassifyLayout(placeholders []model.LayoutPlaceholder) string {
	var titles, bodies int
	var centered, subtitle bool
	for _, p := range placeholders {
		switch p.Type {
		case "title":
			titles++
		case "ctrTitle":
			titles++
			centered = true
		case "subTitle":
			subtitle = true
		case "dt", "ftr", "hdr", "sldNum":
		default:
			bodies++
		}
	}

	switch {
	case centered, titles > 0 && subtitle:
		return "title"
	case titles > 0:
		switch bodies {
		case 0:
			return "titleOnly"
		case 1:
			return "obj"
		case 2:
			return "twoObj"
		}
		return "cust"
	case bodies == 0:
		return "blank"
	case bodies == 1:
		return "objOnly"
	}
	return "cust"
}
