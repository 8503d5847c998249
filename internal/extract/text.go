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

// Defaults for text runs that declare nothing.
const (
	DefaultFontSize   = 14.0
	DefaultFontFamily = "Arial"
	DefaultTextColor  = "#000000"
	DefaultShapeName  = "Unknown"
)

// TextContent joins the text of every run in every paragraph with single
// spaces. A body without runs yields "".
func TextContent(txBody *xmltree.Node) string {
	var parts []string
	for _, p := range txBody.Children("p") {
		for _, r := range p.Children("r") {
			if t := r.Child("t").Text(); t != "" {
				parts = append(parts, t)
			}
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// TextFormatting builds the formatting record from one run's rPr and one
// paragraph's pPr. Either may be nil.
func TextFormatting(rPr, pPr *xmltree.Node) model.TextFormatting {
	f := model.TextFormatting{
		FontSize:   DefaultFontSize,
		FontFamily: DefaultFontFamily,
		Color:      DefaultTextColor,
		Alignment:  units.MapAlignment(pPr.String("algn", "")),
	}

	if sz, ok := rPr.Attr("sz"); ok {
		f.FontSize = units.HundredthsToPoints(units.ParseInt(sz, DefaultFontSize*100))
	}

	if tf := rPr.Child("latin").String("typeface", ""); tf != "" {
		f.FontFamily = tf
	} else if tf := rPr.Child("ea").String("typeface", ""); tf != "" {
		f.FontFamily = tf
	}

	if val := rPr.Path("solidFill", "srgbClr").String("val", ""); val != "" {
		f.Color = units.NormalizeHexColor(val)
	}

	if lnSpc := pPr.Child("lnSpc"); lnSpc != nil {
		if pts := lnSpc.Child("spcPts"); pts != nil {
			v := units.HundredthsToPoints(pts.Int("val", 0))
			f.LineSpacing = &v
		} else if pct := lnSpc.Child("spcPct"); pct != nil {
			v := f.FontSize * float64(pct.Int("val", 100000)) / 100000
			f.LineSpacing = &v
		}
	}

	if spc, ok := rPr.Attr("spc"); ok {
		v := units.HundredthsToPoints(units.ParseInt(spc, 0))
		f.LetterSpacing = &v
	}

	return f
}

// TextElement builds a text element from an sp. Shapes whose text is empty
// after trimming are discarded. Formatting comes from the first paragraph and
// its first run only.
func TextElement(sp *xmltree.Node) (*model.TextElement, bool) {
	txBody := sp.Child("txBody")
	content := TextContent(txBody)
	if content == "" {
		return nil, false
	}

	pos, size := PositionAndSize(sp.Child("spPr"))
	firstPara := txBody.Child("p")

	return &model.TextElement{
		ElementCommon: common(sp.Child("nvSpPr"), model.ElementText, pos, size),
		Content:       content,
		Formatting:    TextFormatting(firstPara.Child("r").Child("rPr"), firstPara.Child("pPr")),
	}, true
}

// common fills the shared element fields from a non-visual properties node
// (nvSpPr or nvPicPr).
func common(nv *xmltree.Node, typ model.ElementType, pos model.Position, size model.Size) model.ElementCommon {
	cNvPr := nv.Child("cNvPr")
	return model.ElementCommon{
		ID:          cNvPr.Int("id", 0),
		Type:        typ,
		Name:        cNvPr.String("name", DefaultShapeName),
		Position:    pos,
		Size:        size,
		Placeholder: placeholder(nv.Path("nvPr", "ph")),
	}
}

func placeholder(ph *xmltree.Node) *model.Placeholder {
	if ph == nil {
		return nil
	}
	p := &model.Placeholder{Type: ph.String("type", "")}
	if idx, ok := ph.Attr("idx"); ok {
		i := int(units.ParseInt(idx, 0))
		p.Index = &i
	}
	return p
}

// resolveThemeFont replaces theme font references such as "+mj-lt" or
// "+mn-ea" with the typeface the theme assigns to them.
func resolveThemeFont(family string, fonts *model.ThemeFonts) string {
	if fonts == nil || !strings.HasPrefix(family, "+") || len(family) != 6 {
		return family
	}
	var set *model.FontSet
	switch family[1:3] {
	case "mj":
		set = fonts.MajorFont
	case "mn":
		set = fonts.MinorFont
	}
	if set == nil {
		return family
	}
	var tf string
	switch family[4:] {
	case "lt":
		tf = set.Latin
	case "ea":
		tf = set.EA
	case "cs":
		tf = set.CS
	}
	if tf == "" {
		return family
	}
	return tf
}
