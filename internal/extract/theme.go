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
	"bytes"
	"fmt"

	"github.com/antchfx/xmlquery"

	"github.com/nicholasgasior/slidejson-go/model"
	"github.com/nicholasgasior/slidejson-go/units"
)

// Theme extracts the colour and font schemes of a theme part. It returns nil
// without error when the part declares neither.
func Theme(data []byte) (*model.Theme, error) {
	doc, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	var colors model.ThemeColors
	if scheme := xmlquery.FindOne(doc, "//*[local-name()='clrScheme']"); scheme != nil {
		colors = model.ThemeColors{
			Dk1:      themeColor(scheme, "dk1"),
			Lt1:      themeColor(scheme, "lt1"),
			Dk2:      themeColor(scheme, "dk2"),
			Lt2:      themeColor(scheme, "lt2"),
			Accent1:  themeColor(scheme, "accent1"),
			Accent2:  themeColor(scheme, "accent2"),
			Accent3:  themeColor(scheme, "accent3"),
			Accent4:  themeColor(scheme, "accent4"),
			Accent5:  themeColor(scheme, "accent5"),
			Accent6:  themeColor(scheme, "accent6"),
			Hlink:    themeColor(scheme, "hlink"),
			FolHlink: themeColor(scheme, "folHlink"),
		}
	}

	fonts := model.ThemeFonts{
		MajorFont: themeFontSet(doc, "majorFont"),
		MinorFont: themeFontSet(doc, "minorFont"),
	}

	if colors == (model.ThemeColors{}) && fonts.MajorFont == nil && fonts.MinorFont == nil {
		return nil, nil
	}
	return &model.Theme{Colors: colors, Fonts: fonts}, nil
}

// themeColor reads one colour slot: srgbClr, then sysClr's lastClr, then a
// schemeClr name passed through as-is.
func themeColor(scheme *xmlquery.Node, slot string) string {
	elem := xmlquery.FindOne(scheme, fmt.Sprintf("*[local-name()='%s']", slot))
	if elem == nil {
		return ""
	}
	if n := xmlquery.FindOne(elem, "*[local-name()='srgbClr']"); n != nil {
		if v := n.SelectAttr("val"); v != "" {
			return units.NormalizeHexColor(v)
		}
	}
	if n := xmlquery.FindOne(elem, "*[local-name()='sysClr']"); n != nil {
		if v := n.SelectAttr("lastClr"); v != "" {
			return units.NormalizeHexColor(v)
		}
	}
	if n := xmlquery.FindOne(elem, "*[local-name()='schemeClr']"); n != nil {
		return n.SelectAttr("val")
	}
	return ""
}

func themeFontSet(doc *xmlquery.Node, slot string) *model.FontSet {
	n := xmlquery.FindOne(doc, fmt.Sprintf("//*[local-name()='fontScheme']/*[local-name()='%s']", slot))
	if n == nil {
		return nil
	}
	typeface := func(script string) string {
		if f := xmlquery.FindOne(n, fmt.Sprintf("*[local-name()='%s']", script)); f != nil {
			return f.SelectAttr("typeface")
		}
		return ""
	}
	return &model.FontSet{
		Latin: typeface("latin"),
		EA:    typeface("ea"),
		CS:    typeface("cs"),
	}
}
