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
	"strings"

	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
	"github.com/nicholasgasior/slidejson-go/units"
)

// DefaultBackgroundColor is used when a slide declares no usable fill.
const DefaultBackgroundColor = "#FFFFFF"

// Background reads the slide's bg/bgPr: a solid fill, then a picture fill,
// then a gradient fill. Anything else is solid white. scheme resolves
// schemeClr references and may be nil.
func Background(slideDoc *xmltree.Node, scheme Scheme) model.Background {
	white := model.Background{Type: model.BackgroundSolid, Color: DefaultBackgroundColor}

	bgPr := slideDoc.Path("sld", "cSld", "bg", "bgPr")
	if bgPr == nil {
		return white
	}

	if solid := bgPr.Child("solidFill"); solid != nil {
		if c, ok := scheme.Color(solid); ok {
			return model.Background{Type: model.BackgroundSolid, Color: c}
		}
	}

	if blipFill := bgPr.Child("blipFill"); blipFill != nil {
		return model.Background{
			Type:    model.BackgroundImage,
			Image:   model.BackgroundImagePending,
			EmbedID: blipFill.Child("blip").String("embed", ""),
		}
	}

	if gradFill := bgPr.Child("gradFill"); gradFill != nil {
		if g := gradient(gradFill, scheme); len(g.Stops) > 0 {
			return model.Background{Type: model.BackgroundGradient, Gradient: g}
		}
	}

	return white
}

func gradient(gradFill *xmltree.Node, scheme Scheme) *model.Gradient {
	g := &model.Gradient{}
	if lin := gradFill.Child("lin"); lin != nil {
		g.Angle = units.RotationToDegrees(lin.Int("ang", 0))
	}
	for _, gs := range gradFill.Child("gsLst").Children("gs") {
		c, ok := scheme.Color(gs)
		if !ok {
			continue
		}
		g.Stops = append(g.Stops, model.GradientStop{
			Position: float64(gs.Int("pos", 0)) / 1000,
			Color:    c,
		})
	}
	return g
}

// Scheme maps scheme colour names (dk1, accent2, bg1, tx1, ...) to #RRGGBB.
type Scheme map[string]string

// defaultColorMap is the clrMap PowerPoint writes for light themes.
var defaultColorMap = map[string]string{
	"bg1": "lt1",
	"tx1": "dk1",
	"bg2": "lt2",
	"tx2": "dk2",
}

// BuildScheme combines a theme palette with a master's colour map. Either
// may be nil.
func BuildScheme(theme *model.Theme, colorMap map[string]string) Scheme {
	s := Scheme{}
	if theme != nil {
		c := theme.Colors
		for name, v := range map[string]string{
			"dk1": c.Dk1, "lt1": c.Lt1, "dk2": c.Dk2, "lt2": c.Lt2,
			"accent1": c.Accent1, "accent2": c.Accent2, "accent3": c.Accent3,
			"accent4": c.Accent4, "accent5": c.Accent5, "accent6": c.Accent6,
			"hlink": c.Hlink, "folHlink": c.FolHlink,
		} {
			if strings.HasPrefix(v, "#") {
				s[name] = v
			}
		}
	}

	for logical, slot := range defaultColorMap {
		if mapped, ok := colorMap[logical]; ok {
			slot = mapped
		}
		if v, ok := s[slot]; ok {
			s[logical] = v
		}
	}
	return s
}

// Color resolves the colour child of a fill node (srgbClr, sysClr or
// schemeClr) including its lumMod and lumOff modifiers.
func (s Scheme) Color(fill *xmltree.Node) (string, bool) {
	if c := fill.Child("srgbClr"); c != nil {
		if v := c.String("val", ""); v != "" {
			return modulate(v, c), true
		}
	}
	if c := fill.Child("sysClr"); c != nil {
		if v := c.String("lastClr", ""); v != "" {
			return modulate(v, c), true
		}
	}
	if c := fill.Child("schemeClr"); c != nil {
		if v, ok := s[c.String("val", "")]; ok {
			return modulate(v, c), true
		}
	}
	return "", false
}

func modulate(hex string, clr *xmltree.Node) string {
	return units.ModulateLuminance(hex,
		clr.Child("lumMod").Int("val", 100000),
		clr.Child("lumOff").Int("val", 0))
}
