package glpoints

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/glpoints/internal/d3"
	"gonum.org/v1/gonum/spatial/r3"
)

// PreviewConfig configures the CPU preview of a frame batch.
type PreviewConfig struct {
	// Width and Height are the output image dimensions in pixels.
	Width, Height int
	// Supersample scales the rasterization resolution before the bilinear
	// downscale, for antialiasing. Values below 1 are treated as 1.
	Supersample int
	// Background fills the image before any point is drawn.
	Background color.RGBA

	// Eye is the camera position, LookAt the observed point and Up the
	// direction considered vertical, in world coordinates.
	Eye, LookAt, Up r3.Vec
	// FOV is the vertical field of view in degrees.
	FOV       float64
	Near, Far float64
}

// RenderPreview rasterizes the batch on the CPU into an image, for headless
// tests and debug dumps where no device context exists. Unlike the device
// path it honors the per-point size channel directly; there is no device-wide
// fallback to mirror. The batch is left untouched: previewing does not drain.
func RenderPreview(batch *FrameBatch, cfg PreviewConfig) image.Image {
	scale := cfg.Supersample
	if scale < 1 {
		scale = 1
	}
	w, h := cfg.Width*scale, cfg.Height*scale
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	aspect := float64(cfg.Width) / float64(cfg.Height)
	eye := fauxgl.V(cfg.Eye.X, cfg.Eye.Y, cfg.Eye.Z)
	center := fauxgl.V(cfg.LookAt.X, cfg.LookAt.Y, cfg.LookAt.Z)
	up := fauxgl.V(cfg.Up.X, cfg.Up.Y, cfg.Up.Z)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(cfg.FOV, aspect, cfg.Near, cfg.Far)

	vertices := batch.vertices.data
	sizes := batch.sizes.data
	for k := 0; k < len(vertices)/2; k++ {
		pos := d3.R3(vertices[2*k])
		v := matrix.MulPositionW(fauxgl.V(pos.X, pos.Y, pos.Z))
		if v.W <= 0 {
			continue // behind the eye
		}
		ndcX, ndcY, ndcZ := v.X/v.W, v.Y/v.W, v.Z/v.W
		if ndcZ < -1 || ndcZ > 1 {
			continue
		}
		px := (ndcX + 1) / 2 * float64(w)
		py := (1 - ndcY) / 2 * float64(h)
		half := float64(sizes[k]) * float64(scale) / 2
		fillSquare(img, px, py, half, previewColor(vertices[2*k+1]))
	}

	if scale > 1 {
		return resize.Resize(uint(cfg.Width), uint(cfg.Height), img, resize.Bilinear)
	}
	return img
}

// fillSquare paints an axis-aligned square of at least one pixel centered at
// (px, py).
func fillSquare(img *image.RGBA, px, py, half float64, c color.RGBA) {
	x0, x1 := int(px-half), int(px+half)
	y0, y1 := int(py-half), int(py+half)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	r := image.Rect(x0, y0, x1, y1).Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

// previewColor converts a normalized color entry to 8-bit RGBA, clamping
// out-of-range components.
func previewColor(v ms3.Vec) color.RGBA {
	return color.RGBA{
		R: channelByte(v.X),
		G: channelByte(v.Y),
		B: channelByte(v.Z),
		A: 255,
	}
}

func channelByte(c float32) uint8 {
	if c <= 0 {
		return 0
	}
	if c >= 1 {
		return 255
	}
	return uint8(c*255 + 0.5)
}
