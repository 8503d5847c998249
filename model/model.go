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

// Package model defines the JSON slide model produced by slidejson.
// Geometry is in EMUs (914400 per inch) unless a field says otherwise.
package model

import "encoding/json"

// Position is the top-left offset of an element in EMUs.
type Position struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Size is an element's extent in EMUs. Zero is valid.
type Size struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// Transform holds flips and rotation of one shape. It is never inherited from
// enclosing groups.
type Transform struct {
	FlipH bool `json:"flipH"`
	FlipV bool `json:"flipV"`
	// Rotation in degrees, clockwise.
	Rotation float64 `json:"rotation"`
}

// TextFormatting is the styling of a text element, taken from its first
// paragraph and first run.
type TextFormatting struct {
	// FontSize in points.
	FontSize   float64 `json:"fontSize"`
	FontFamily string  `json:"fontFamily"`
	// Color as #RRGGBB.
	Color string `json:"color"`
	// Alignment is one of left, center, right, justify.
	Alignment string `json:"alignment"`
	// LineSpacing in points; nil when the paragraph declares none.
	LineSpacing *float64 `json:"lineSpacing,omitempty"`
	// LetterSpacing in points; nil when the run declares none.
	LetterSpacing *float64 `json:"letterSpacing,omitempty"`
}

// BackgroundType discriminates Background.
type BackgroundType string

const (
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundImage    BackgroundType = "image"
)

// BackgroundImagePending is the Image value of a background whose picture
// has not been resolved to a media file name.
const BackgroundImagePending = "background"

// Background is the fill behind a slide's elements.
type Background struct {
	Type     BackgroundType `json:"type"`
	Color    string         `json:"color,omitempty"`
	Image    string         `json:"image,omitempty"`
	Gradient *Gradient      `json:"gradient,omitempty"`

	// EmbedID is the relationship id of an image fill.
	EmbedID string `json:"-"`
}

// Gradient is a linear or path gradient fill.
type Gradient struct {
	// Angle in degrees for linear gradients.
	Angle float64        `json:"angle"`
	Stops []GradientStop `json:"stops"`
}

// GradientStop is one colour stop; Position runs from 0 to 100.
type GradientStop struct {
	Position float64 `json:"position"`
	Color    string  `json:"color"`
}

// Layout references the slide layout a slide was built on.
type Layout struct {
	Type         string              `json:"type"`
	Reference    string              `json:"reference"`
	Placeholders []LayoutPlaceholder `json:"placeholders,omitempty"`
}

// LayoutPlaceholder is one placeholder slot declared by a layout.
type LayoutPlaceholder struct {
	Type  string `json:"type"`
	Index *int   `json:"index,omitempty"`
	Size  string `json:"size,omitempty"`
}

// ThemeColors is a theme's colour scheme. Values are #RRGGBB, or a scheme
// colour name when the theme itself refers to one.
type ThemeColors struct {
	Dk1      string `json:"dk1,omitempty"`
	Lt1      string `json:"lt1,omitempty"`
	Dk2      string `json:"dk2,omitempty"`
	Lt2      string `json:"lt2,omitempty"`
	Accent1  string `json:"accent1,omitempty"`
	Accent2  string `json:"accent2,omitempty"`
	Accent3  string `json:"accent3,omitempty"`
	Accent4  string `json:"accent4,omitempty"`
	Accent5  string `json:"accent5,omitempty"`
	Accent6  string `json:"accent6,omitempty"`
	Hlink    string `json:"hlink,omitempty"`
	FolHlink string `json:"folHlink,omitempty"`
}

// FontSet names the typefaces of one theme font slot.
type FontSet struct {
	Latin string `json:"latin,omitempty"`
	EA    string `json:"ea,omitempty"`
	CS    string `json:"cs,omitempty"`
}

// ThemeFonts holds the theme's heading (major) and body (minor) fonts.
type ThemeFonts struct {
	MajorFont *FontSet `json:"majorFont,omitempty"`
	MinorFont *FontSet `json:"minorFont,omitempty"`
}

// Theme is the palette and font scheme in effect for a slide.
type Theme struct {
	Colors ThemeColors `json:"colors"`
	Fonts  ThemeFonts  `json:"fonts"`
}

// TextStyles carries the master's title, body and other text styles in
// semantic-tree form.
type TextStyles struct {
	Title json.RawMessage `json:"title,omitempty"`
	Body  json.RawMessage `json:"body,omitempty"`
	Other json.RawMessage `json:"other,omitempty"`
}

// MasterSlide is what a slide inherits from its master.
type MasterSlide struct {
	// ColorMap maps logical colours (bg1, tx1, ...) to scheme slots (lt1, dk1, ...).
	ColorMap   map[string]string `json:"colorMap,omitempty"`
	TextStyles *TextStyles       `json:"textStyles,omitempty"`
}

// SlideSize is a slide extent in EMUs.
type SlideSize struct {
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

// PixelSize is a slide extent in pixels.
type PixelSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EmbeddedFont is a font shipped inside the package.
type EmbeddedFont struct {
	Typeface string `json:"typeface"`
	Charset  string `json:"charset,omitempty"`
}

// PresentationMetadata is deck-wide information repeated on every slide.
type PresentationMetadata struct {
	SlideSize     *SlideSize     `json:"slideSize,omitempty"`
	SlideSizePx   *PixelSize     `json:"slideSizePx,omitempty"`
	EmbeddedFonts []EmbeddedFont `json:"embeddedFonts,omitempty"`
}

// Clone returns a deep copy of m, or nil when m is nil.
func (m *PresentationMetadata) Clone() *PresentationMetadata {
	if m == nil {
		return nil
	}
	out := &PresentationMetadata{}
	if m.SlideSize != nil {
		size := *m.SlideSize
		out.SlideSize = &size
	}
	if m.SlideSizePx != nil {
		px := *m.SlideSizePx
		out.SlideSizePx = &px
	}
	if m.EmbeddedFonts != nil {
		out.EmbeddedFonts = append([]EmbeddedFont(nil), m.EmbeddedFonts...)
	}
	return out
}

// SlideJSON is the converted form of one slide.
type SlideJSON struct {
	// SlideNumber is the 1-based N of ppt/slides/slideN.xml.
	SlideNumber          int                   `json:"slideNumber"`
	Background           Background            `json:"background"`
	Elements             Elements              `json:"elements"`
	Layout               Layout                `json:"layout"`
	Theme                *Theme                `json:"theme,omitempty"`
	MasterSlide          *MasterSlide          `json:"masterSlide,omitempty"`
	PresentationMetadata *PresentationMetadata `json:"presentationMetadata,omitempty"`
	// Notes is the speaker notes text, if any.
	Notes string `json:"notes,omitempty"`
}
