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

// Package units converts OOXML measurements and attribute strings. Every
// function is total: bad input falls back to a default instead of failing.
package units

import (
	"math"
	"strconv"
	"strings"
)

const (
	// EMUPerInch is the number of English Metric Units in one inch.
	EMUPerInch = 914400
	// EMUPerPoint is the number of EMUs in one typographic point.
	EMUPerPoint = 12700
	// EMUPerPixel is the number of EMUs in one pixel at DefaultDPI.
	EMUPerPixel = 9525
	// DefaultDPI is the resolution EMUToPixels assumes.
	DefaultDPI = 96

	// DefaultSlideWidth and DefaultSlideHeight describe a 16:9 widescreen slide.
	DefaultSlideWidth  = 18288000
	DefaultSlideHeight = 10287000

	// rotationUnits is the number of rot units in one degree.
	rotationUnits = 60000
)

// EMUToPoints converts EMUs to points.
func EMUToPoints(emu int64) float64 {
	return float64(emu) / EMUPerPoint
}

// PointsToEMU converts points to EMUs, rounded to the nearest unit.
func PointsToEMU(pt float64) int64 {
	return int64(math.Round(pt * EMUPerPoint))
}

// EMUToPixels converts EMUs to pixels at 96 DPI.
func EMUToPixels(emu int64) float64 {
	return float64(emu) / EMUPerPixel
}

// EMUToPixelsAt converts EMUs to pixels at the given resolution. A
// non-positive dpi means DefaultDPI.
func EMUToPixelsAt(emu int64, dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return float64(emu) * dpi / EMUPerInch
}

// HundredthsToPoints converts hundredths of a point (run sz, spcPts, spc) to
// points.
func HundredthsToPoints(v int64) float64 {
	return float64(v) / 100
}

// RotationToDegrees converts an xfrm rot value (60000ths of a degree) to
// degrees.
func RotationToDegrees(rot int64) float64 {
	return float64(rot) / rotationUnits
}

// NormalizeHexColor returns s with a single leading '#' and upper-case hex
// digits. The digit count is not checked.
func NormalizeHexColor(s string) string {
	return "#" + strings.ToUpper(strings.TrimPrefix(s, "#"))
}

// Alignment values produced by MapAlignment.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "justify"
)

// MapAlignment maps a DrawingML algn token to a text alignment. Anything
// unrecognised, including the empty string, is left.
func MapAlignment(token string) string {
	switch token {
	case "ctr":
		return AlignCenter
	case "r":
		return AlignRight
	case "just":
		return AlignJustify
	}
	return AlignLeft
}

// ParseInt parses an integer attribute. Decimal strings are truncated toward
// zero; anything else returns def.
func ParseInt(s string, def int64) int64 {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int64(f)
	}
	return def
}

// ParseFloat parses a numeric attribute or returns def.
func ParseFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// ParseBool parses an XML schema boolean ("true", "false", "1", "0") or
// returns def.
func ParseBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on":
		return true
	case "false", "0", "off":
		return false
	}
	return def
}
