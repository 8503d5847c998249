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
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// percentUnits is 100% in DrawingML percentage attributes.
const percentUnits = 100000

// ModulateLuminance applies DrawingML lumMod/lumOff (both in 1/1000 percent)
// to a hex colour in HSL space. lumMod 100000 and lumOff 0 leave the colour
// unchanged. Unparsable input is returned normalized but otherwise untouched.
func ModulateLuminance(hex string, lumMod, lumOff int64) string {
	hex = NormalizeHexColor(hex)
	if lumMod == percentUnits && lumOff == 0 {
		return hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	l = l*float64(lumMod)/percentUnits + float64(lumOff)/percentUnits
	return strings.ToUpper(colorful.Hsl(h, s, l).Clamped().Hex())
}
