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
	"math"

	"github.com/nicholasgasior/slidejson-go/internal/xmltree"
	"github.com/nicholasgasior/slidejson-go/model"
	"github.com/nicholasgasior/slidejson-go/units"
)

// Transform reads flips and rotation from a shape's xfrm. Missing values
// default to false and 0.
func Transform(spPr *xmltree.Node) model.Transform {
	xfrm := spPr.Child("xfrm")
	return model.Transform{
		FlipH:    xfrm.Bool("flipH", false),
		FlipV:    xfrm.Bool("flipV", false),
		Rotation: units.RotationToDegrees(xfrm.Int("rot", 0)),
	}
}

// PositionAndSize reads off and ext from a shape's xfrm. It knows nothing
// about enclosing groups.
func PositionAndSize(spPr *xmltree.Node) (model.Position, model.Size) {
	xfrm := spPr.Child("xfrm")
	off := xfrm.Child("off")
	ext := xfrm.Child("ext")
	return model.Position{X: off.Int("x", 0), Y: off.Int("y", 0)},
		model.Size{Width: ext.Int("cx", 0), Height: ext.Int("cy", 0)}
}

// groupXfrm is the transform of a grpSp: where it sits on its parent (off,
// ext) and the coordinate space its children use (chOff, chExt).
type groupXfrm struct {
	off, chOff model.Position
	ext, chExt model.Size
}

func readGroupXfrm(grpSpPr *xmltree.Node) groupXfrm {
	xfrm := grpSpPr.Child("xfrm")
	g := groupXfrm{}
	g.off, g.ext = PositionAndSize(grpSpPr)
	ch := xfrm.Child("chOff")
	g.chOff = model.Position{X: ch.Int("x", 0), Y: ch.Int("y", 0)}
	che := xfrm.Child("chExt")
	g.chExt = model.Size{Width: che.Int("cx", 0), Height: che.Int("cy", 0)}
	return g
}

// frame maps coordinates of one nesting level to slide coordinates:
// slide = d + local*s.
type frame struct {
	dx, dy float64
	sx, sy float64
}

var identity = frame{sx: 1, sy: 1}

func offsetFrame(p model.Position) frame {
	return frame{dx: float64(p.X), dy: float64(p.Y), sx: 1, sy: 1}
}

// enter returns the frame for a group's direct children and the frame handed
// to groups nested inside it.
//
// Unscaled, children land at d + off - chOff + local while nested groups
// receive d + off and subtract their own chOff. Scaled, both use the affine
// map off + (local - chOff) * ext/chExt.
func (f frame) enter(g groupXfrm, scaled bool) (children, nested frame) {
	if !scaled {
		children = frame{
			dx: f.dx + f.sx*float64(g.off.X-g.chOff.X),
			dy: f.dy + f.sy*float64(g.off.Y-g.chOff.Y),
			sx: f.sx,
			sy: f.sy,
		}
		nested = frame{
			dx: f.dx + f.sx*float64(g.off.X),
			dy: f.dy + f.sy*float64(g.off.Y),
			sx: f.sx,
			sy: f.sy,
		}
		return children, nested
	}

	kx := scale(g.ext.Width, g.chExt.Width)
	ky := scale(g.ext.Height, g.chExt.Height)
	children = frame{
		dx: f.dx + f.sx*(float64(g.off.X)-float64(g.chOff.X)*kx),
		dy: f.dy + f.sy*(float64(g.off.Y)-float64(g.chOff.Y)*ky),
		sx: f.sx * kx,
		sy: f.sy * ky,
	}
	return children, children
}

func scale(ext, chExt int64) float64 {
	if ext <= 0 || chExt <= 0 {
		return 1
	}
	return float64(ext) / float64(chExt)
}

func (f frame) place(pos model.Position, size model.Size) (model.Position, model.Size) {
	return model.Position{
			X: round(f.dx + f.sx*float64(pos.X)),
			Y: round(f.dy + f.sy*float64(pos.Y)),
		}, model.Size{
			Width:  round(f.sx * float64(size.Width)),
			Height: round(f.sy * float64(size.Height)),
		}
}

func round(v float64) int64 {
	return int64(math.Round(v))
}

// clipToBounds trims an element to the visual box of its group. Elements
// are only trimmed on the sides where they overflow.
func clipToBounds(pos model.Position, size model.Size, bPos model.Position, bSize model.Size) (model.Position, model.Size) {
	if bSize.Width <= 0 || bSize.Height <= 0 {
		return pos, size
	}
	right := bPos.X + bSize.Width
	bottom := bPos.Y + bSize.Height

	if pos.X+size.Width > right && pos.X >= bPos.X {
		size.Width = max(0, right-pos.X)
	}
	if pos.Y+size.Height > bottom && pos.Y >= bPos.Y {
		size.Height = max(0, bottom-pos.Y)
	}
	if pos.X < bPos.X {
		size.Width = max(0, size.Width-(bPos.X-pos.X))
		pos.X = bPos.X
	}
	if pos.Y < bPos.Y {
		size.Height = max(0, size.Height-(bPos.Y-pos.Y))
		pos.Y = bPos.Y
	}
	return pos, size
}
