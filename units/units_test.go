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

package units

import (
	"math"
	"regexp"
	"testing"
)

func TestEMUConversions(t *testing.T) {
	if got := EMUToPoints(EMUPerPoint); got != 1 {
		t.Errorf("EMUToPoints(12700) = %v, want 1", got)
	}
	if got := EMUToPoints(EMUPerInch); got != 72 {
		t.Errorf("EMUToPoints(914400) = %v, want 72", got)
	}
	if got := EMUToPixels(EMUPerInch); got != 96 {
		t.Errorf("EMUToPixels(914400) = %v, want 96", got)
	}
	if got := EMUToPixelsAt(EMUPerInch, 72); got != 72 {
		t.Errorf("EMUToPixelsAt(914400, 72) = %v, want 72", got)
	}
	if got := EMUToPixelsAt(EMUPerInch, 0); got != 96 {
		t.Errorf("EMUToPixelsAt(914400, 0) = %v, want 96", got)
	}
	if got := RotationToDegrees(5400000); got != 90 {
		t.Errorf("RotationToDegrees(5400000) = %v, want 90", got)
	}
	if got := HundredthsToPoints(1800); got != 18 {
		t.Errorf("HundredthsToPoints(1800) = %v, want 18", got)
	}
}

func TestEMURoundTripAndLinearity(t *testing.T) {
	for _, emu := range []int64{0, 1, 6350, 12700, 914400, 1828800, 18288000, 123456789} {
		if got := PointsToEMU(EMUToPoints(emu)); math.Abs(float64(got-emu)) > 1 {
			t.Errorf("PointsToEMU(EMUToPoints(%d)) = %d", emu, got)
		}
		if a, b := EMUToPixels(2*emu), 2*EMUToPixels(emu); math.Abs(a-b) > 1e-9 {
			t.Errorf("EMUToPixels(2*%d) = %v, want %v", emu, a, b)
		}
	}
}

func TestNormalizeHexColor(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ff0000", "#FF0000"},
		{"#ff0000", "#FF0000"},
		{"#FFFFFF", "#FFFFFF"},
		{"00aAbB", "#00AABB"},
		{"", "#"},
	}
	hex6 := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := NormalizeHexColor(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeHexColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := NormalizeHexColor(got); again != got {
				t.Errorf("not idempotent: %q -> %q", got, again)
			}
			if len(tt.in) >= 6 && !hex6.MatchString(got) {
				t.Errorf("%q does not match #RRGGBB", got)
			}
		})
	}
}

func TestMapAlignment(t *testing.T) {
	tests := map[string]string{
		"ctr":  AlignCenter,
		"r":    AlignRight,
		"just": AlignJustify,
		"l":    AlignLeft,
		"dist": AlignLeft,
		"":     AlignLeft,
	}
	for in, want := range tests {
		if got := MapAlignment(in); got != want {
			t.Errorf("MapAlignment(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseNumbers(t *testing.T) {
	intTests := []struct {
		in   string
		want int64
	}{
		{"12", 12},
		{" 42 ", 42},
		{"-3", -3},
		{"12.7", 12},
		{"abc", 7},
		{"", 7},
	}
	for _, tt := range intTests {
		if got := ParseInt(tt.in, 7); got != tt.want {
			t.Errorf("ParseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := ParseFloat("1.5", 0); got != 1.5 {
		t.Errorf("ParseFloat(1.5) = %v", got)
	}
	if got := ParseFloat("NaN", 2); got != 2 {
		t.Errorf("ParseFloat(NaN) = %v, want default", got)
	}

	boolTests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"1", false, true},
		{"true", false, true},
		{"0", true, false},
		{"false", true, false},
		{"maybe", true, true},
	}
	for _, tt := range boolTests {
		if got := ParseBool(tt.in, tt.def); got != tt.want {
			t.Errorf("ParseBool(%q, %v) = %v", tt.in, tt.def, got)
		}
	}
}

func TestModulateLuminance(t *testing.T) {
	tests := []struct {
		name           string
		hex            string
		lumMod, lumOff int64
		want           string
	}{
		{"unchanged", "4472c4", 100000, 0, "#4472C4"},
		{"to black", "4472C4", 0, 0, "#000000"},
		{"to white", "000000", 0, 100000, "#FFFFFF"},
		{"bad input", "zz", 50000, 0, "#ZZ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ModulateLuminance(tt.hex, tt.lumMod, tt.lumOff); got != tt.want {
				t.Errorf("ModulateLuminance(%q, %d, %d) = %q, want %q", tt.hex, tt.lumMod, tt.lumOff, got, tt.want)
			}
		})
	}
}
