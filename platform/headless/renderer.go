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

package headless

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gravitron/gravitron/curated"
	"github.com/gravitron/gravitron/platform"
)

// Renderer implements the platform.Renderer interface.
type Renderer struct {
	binding *Binding
	window  *Window

	logicalWidth  int
	logicalHeight int
	integerScale  bool
	vsync         bool
	destroyed     bool

	// the image being drawn to. it becomes the binding's frame on Present()
	back *image.RGBA
}

// LogicalSize returns the current logical size. A size of zero indicates
// that no logical size has been set.
func (rnd *Renderer) LogicalSize() (int, int) {
	return rnd.logicalWidth, rnd.logicalHeight
}

// IntegerScale returns true if integer scaling is enabled.
func (rnd *Renderer) IntegerScale() bool {
	return rnd.integerScale
}

// VSync returns true if vsync is enabled.
func (rnd *Renderer) VSync() bool {
	return rnd.vsync
}

// IsDestroyed returns true if the renderer has been destroyed.
func (rnd *Renderer) IsDestroyed() bool {
	return rnd.destroyed
}

func (rnd *Renderer) outputSize() (int, int) {
	return rnd.window.width * rnd.window.density, rnd.window.height * rnd.window.density
}

// Viewport returns the area of the output that the logical area is drawn to.
// The viewport can be larger than the output when integer scaling is enabled
// and the output is smaller than the logical size.
func (rnd *Renderer) Viewport() image.Rectangle {
	ow, oh := rnd.outputSize()
	return viewport(ow, oh, rnd.logicalWidth, rnd.logicalHeight, rnd.integerScale)
}

// viewport calculates the area of the output used by the logical size. the
// logical area is scaled to fit the output and centred.
func viewport(ow, oh, lw, lh int, integerScale bool) image.Rectangle {
	if lw <= 0 || lh <= 0 || ow <= 0 || oh <= 0 {
		return image.Rect(0, 0, ow, oh)
	}

	var w, h int

	if integerScale {
		// the limiting dimension decides the scale. comparing aspect ratios
		// with integers: lw/lh > ow/oh
		var scale int
		if lw*oh > ow*lh {
			scale = ow / lw
		} else {
			scale = oh / lh
		}
		scale = max(scale, 1)
		w = lw * scale
		h = lh * scale
	} else if lw*oh == ow*lh {
		w = ow
		h = oh
	} else if lw*oh > ow*lh {
		// wider than the output. letterbox top and bottom
		w = ow
		h = lh * ow / lw
	} else {
		// taller than the output. pillarbox left and right
		w = lw * oh / lh
		h = oh
	}

	x := (ow - w) / 2
	y := (oh - h) / 2

	return image.Rect(x, y, x+w, y+h)
}

// OutputSize implements the platform.Renderer interface.
func (rnd *Renderer) OutputSize() (int, int, error) {
	if err := rnd.binding.call("OutputSize"); err != nil {
		return 0, 0, err
	}
	w, h := rnd.outputSize()
	return w, h, nil
}

// SetLogicalSize implements the platform.Renderer interface.
func (rnd *Renderer) SetLogicalSize(width, height int) error {
	if err := rnd.binding.call("SetLogicalSize"); err != nil {
		return err
	}
	if width < 0 || height < 0 {
		return curated.Errorf(InvalidArgument, "SetLogicalSize",
			fmt.Errorf("logical size %dx%d", width, height))
	}
	rnd.logicalWidth = width
	rnd.logicalHeight = height
	return nil
}

// SetIntegerScale implements the platform.Renderer interface.
func (rnd *Renderer) SetIntegerScale(set bool) error {
	if err := rnd.binding.call("SetIntegerScale"); err != nil {
		return err
	}
	rnd.integerScale = set
	return nil
}

// SetVSync implements the platform.Renderer interface.
func (rnd *Renderer) SetVSync(set bool) error {
	if err := rnd.binding.call("SetVSync"); err != nil {
		return err
	}
	if !rnd.binding.liveVSync {
		return curated.Errorf(platform.Unsupported, "changing vsync on a live renderer")
	}
	rnd.vsync = set
	return nil
}

// CreateTexture implements the platform.Renderer interface.
func (rnd *Renderer) CreateTexture(width, height int) (platform.Texture, error) {
	if err := rnd.binding.call("CreateTexture"); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidArgument, "CreateTexture",
			fmt.Errorf("texture size %dx%d", width, height))
	}
	return &Texture{
		binding: rnd.binding,
		quality: rnd.binding.scaleQuality,
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// prepare the back buffer. the back buffer is reallocated if the output size
// has changed.
func (rnd *Renderer) prepareBack() {
	ow, oh := rnd.outputSize()
	if rnd.back == nil || rnd.back.Bounds().Dx() != ow || rnd.back.Bounds().Dy() != oh {
		rnd.back = image.NewRGBA(image.Rect(0, 0, ow, oh))
		draw.Draw(rnd.back, rnd.back.Bounds(), image.Black, image.Point{}, draw.Src)
	}
}

// Copy implements the platform.Renderer interface.
func (rnd *Renderer) Copy(tex platform.Texture, src *image.Rectangle, flip platform.Flip) error {
	if err := rnd.binding.call("Copy"); err != nil {
		return err
	}

	t, ok := tex.(*Texture)
	if !ok || t == nil {
		return curated.Errorf(InvalidArgument, "Copy", fmt.Errorf("texture of type %T", tex))
	}
	if t.destroyed {
		return curated.Errorf(InvalidArgument, "Copy", fmt.Errorf("texture has been destroyed"))
	}

	sr := t.img.Bounds()
	if src != nil {
		sr = src.Intersect(sr)
	}

	var img image.Image = t.img
	if flip == platform.FlipVertical {
		img = flipped{img: t.img, area: sr}
	}

	rnd.prepareBack()
	t.scaler().Scale(rnd.back, rnd.Viewport(), img, sr, draw.Over, nil)

	return nil
}

// Present implements the platform.Renderer interface.
func (rnd *Renderer) Present() {
	_ = rnd.binding.call("Present")
	rnd.prepareBack()
	f := image.NewRGBA(rnd.back.Bounds())
	copy(f.Pix, rnd.back.Pix)
	rnd.binding.frame = f
}

// Clear implements the platform.Renderer interface.
func (rnd *Renderer) Clear() error {
	if err := rnd.binding.call("Clear"); err != nil {
		return err
	}
	rnd.back = nil
	rnd.prepareBack()
	return nil
}

// Destroy implements the platform.Renderer interface.
func (rnd *Renderer) Destroy() error {
	if err := rnd.binding.call("Renderer.Destroy"); err != nil {
		return err
	}
	rnd.destroyed = true
	if rnd.binding.renderer == rnd {
		rnd.binding.renderer = nil
	}
	return nil
}

// flipped presents an area of an image upside down.
type flipped struct {
	img  *image.RGBA
	area image.Rectangle
}

func (f flipped) ColorModel() color.Model {
	return f.img.ColorModel()
}

func (f flipped) Bounds() image.Rectangle {
	return f.img.Bounds()
}

func (f flipped) At(x, y int) color.Color {
	return f.img.At(x, f.area.Min.Y+f.area.Max.Y-1-y)
}

// Texture implements the platform.Texture interface.
type Texture struct {
	binding   *Binding
	quality   platform.ScaleQuality
	img       *image.RGBA
	destroyed bool
}

// Quality returns the scale quality that was in force when the texture was
// created.
func (t *Texture) Quality() platform.ScaleQuality {
	return t.quality
}

// IsDestroyed returns true if the texture has been destroyed.
func (t *Texture) IsDestroyed() bool {
	return t.destroyed
}

// Image returns the current content of the texture.
func (t *Texture) Image() *image.RGBA {
	return t.img
}

func (t *Texture) scaler() draw.Scaler {
	if t.quality == platform.ScaleLinear {
		return draw.ApproxBiLinear
	}
	return draw.NearestNeighbor
}

// Update implements the platform.Texture interface. The pixels are native
// endian ARGB8888 words.
func (t *Texture) Update(pixels []byte, pitch int) error {
	if err := t.binding.call("Update"); err != nil {
		return err
	}
	if t.destroyed {
		return curated.Errorf(InvalidArgument, "Update", fmt.Errorf("texture has been destroyed"))
	}

	w := t.img.Bounds().Dx()
	h := t.img.Bounds().Dy()
	if pitch < w*4 || len(pixels) < pitch*(h-1)+w*4 {
		return curated.Errorf(InvalidArgument, "Update", fmt.Errorf("pixel data is too short"))
	}

	// the pixel data is not premultiplied. the texture image is
	for y := range h {
		row := pixels[y*pitch:]
		for x := range w {
			c := binary.NativeEndian.Uint32(row[x*4:])
			nc := color.NRGBA{
				R: uint8(c >> 16),
				G: uint8(c >> 8),
				B: uint8(c),
				A: uint8(c >> 24),
			}
			t.img.Set(x, y, nc)
		}
	}

	return nil
}

// Destroy implements the platform.Texture interface.
func (t *Texture) Destroy() error {
	if err := t.binding.call("Texture.Destroy"); err != nil {
		return err
	}
	t.destroyed = true
	return nil
}

// Surface implements the platform.Surface interface.
type Surface struct {
	binding *Binding
	width   int
	height  int
	pixels  []byte
}

// Pixels implements the platform.Surface interface.
func (s *Surface) Pixels() []byte {
	return s.pixels
}

// Pitch implements the platform.Surface interface.
func (s *Surface) Pitch() int {
	return s.width * 4
}

// Width implements the platform.Surface interface.
func (s *Surface) Width() int {
	return s.width
}

// Height implements the platform.Surface interface.
func (s *Surface) Height() int {
	return s.height
}

// Free implements the platform.Surface interface.
func (s *Surface) Free() {
	_ = s.binding.call("Free")
	s.pixels = nil
}

// IsFreed returns true if the surface has been freed.
func (s *Surface) IsFreed() bool {
	return s.pixels == nil
}
