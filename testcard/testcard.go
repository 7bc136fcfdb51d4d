// This file is part of Gravitron.
//
// Gravitron is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gravitron is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gravitron.  If not, see <https://www.gnu.org/licenses/>.

package testcard

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// the colour bars across the top two thirds of the card.
var bars = []color.RGBA{
	{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0xc0, A: 0xff},
	{R: 0x00, G: 0xc0, B: 0x00, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0xc0, A: 0xff},
	{R: 0xc0, G: 0x00, B: 0x00, A: 0xff},
	{R: 0x00, G: 0x00, B: 0xc0, A: 0xff},
}

// Overlay is text drawn over the test card.
type Overlay struct {
	Title    string
	Lines    []string
	Selected int
}

// TestCard draws successive frames of a test card.
type TestCard struct {
	dc     *gg.Context
	width  int
	height int
	label  string
}

// NewTestCard is the preferred method of initialisation for the TestCard
// type. The label is drawn in the lower part of the card.
func NewTestCard(width int, height int, label string) *TestCard {
	return &TestCard{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
		label:  label,
	}
}

// Bounds returns the rectangle covered by a frame.
func (tc *TestCard) Bounds() image.Rectangle {
	return image.Rect(0, 0, tc.width, tc.height)
}

// Bar returns the colour of the bar at index i.
func Bar(i int) color.RGBA {
	return bars[i%len(bars)]
}

// NumBars is the number of colour bars on the card.
const NumBars = 7

// Frame draws frame n of the card. The overlay can be nil. The returned image
// is reused by the next call to Frame().
func (tc *TestCard) Frame(n int, overlay *Overlay) image.Image {
	dc := tc.dc
	w := float64(tc.width)
	h := float64(tc.height)

	dc.SetRGB(0, 0, 0)
	dc.Clear()

	barsHeight := h * 2 / 3
	bw := w / NumBars
	for i := range NumBars {
		dc.SetColor(Bar(i))
		dc.DrawRectangle(float64(i)*bw, 0, bw, barsHeight)
		dc.Fill()
	}

	// greyscale ramp
	steps := 8
	sw := w / float64(steps)
	for i := range steps {
		v := float64(i) / float64(steps-1)
		dc.SetRGB(v, v, v)
		dc.DrawRectangle(float64(i)*sw, barsHeight, sw, h/12)
		dc.Fill()
	}

	// a marker that moves one pixel per frame so that a stalled presentation
	// is obvious
	x := float64(n % tc.width)
	dc.SetRGB(1, 1, 1)
	dc.DrawRectangle(x, h-8, 4, 4)
	dc.Fill()

	// border. drawn inside the card so that the edge pixels are visible
	dc.SetRGB(1, 1, 1)
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, w-1, h-1)
	dc.Stroke()

	dc.DrawStringAnchored(tc.label, w/2, h*5/6, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%06d", n), w-4, h-14, 1, 0.5)

	if overlay != nil {
		tc.drawOverlay(overlay)
	}

	return dc.Image()
}

func (tc *TestCard) drawOverlay(overlay *Overlay) {
	dc := tc.dc
	const lineHeight = 14.0
	const margin = 16.0

	boxHeight := lineHeight * float64(len(overlay.Lines)+2)
	dc.SetRGBA(0, 0, 0, 0.8)
	dc.DrawRectangle(margin, margin, float64(tc.width)-margin*2, boxHeight)
	dc.Fill()

	dc.SetRGB(1, 1, 0)
	dc.DrawStringAnchored(overlay.Title, float64(tc.width)/2, margin+lineHeight/2, 0.5, 0.5)

	for i, l := range overlay.Lines {
		y := margin + lineHeight*float64(i+1) + lineHeight/2
		if i == overlay.Selected {
			l = fmt.Sprintf("[ %s ]", l)
			dc.SetRGB(1, 1, 1)
		} else {
			dc.SetRGB(0.6, 0.6, 0.6)
		}
		dc.DrawStringAnchored(l, float64(tc.width)/2, y, 0.5, 0.5)
	}
}

// Save the image as a PNG file.
func Save(filename string, img image.Image) error {
	if err := gg.SavePNG(filename, img); err != nil {
		return fmt.Errorf("testcard: %w", err)
	}
	return nil
}
