// Package display shows the editor's software-rasterized canvas in an
// OpenGL window. The canvas is uploaded as a texture and drawn on a single
// window-filling quad; no geometry is rasterized on the GPU.
package display

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/irfansharif/kurs/internal/raster"
)

var displayLogger *log.Logger = log.New(io.Discard, "", 0)

func init() {
	if os.Getenv("KURS_DEBUG_DISPLAY") == "1" {
		displayLogger = log.New(os.Stdout, "[display] ", log.Ltime|log.Lmsgprefix)
	}
}

// Quad corners as (x, y, u, v). Texture row 0 is the canvas top, so v is
// flipped relative to clip space.
var quadVertices = []float32{
	-1, -1, 0, 1,
	1, -1, 1, 1,
	-1, 1, 0, 0,
	1, 1, 1, 0,
}

// Stats tracks upload metrics.
type Stats struct {
	Uploads          int
	LastUploadTimeUs float64
}

// Surface owns the GL objects used to present a canvas.
type Surface struct {
	w, h     int // canvas size, fixed at creation
	shaders  *ShaderManager
	vao, vbo uint32
	texture  uint32
	stats    Stats
}

// NewSurface allocates a texture for a w×h canvas and the quad it is drawn
// on. A GL context must be current.
func NewSurface(w, h int) *Surface {
	s := &Surface{w: w, h: h, shaders: NewShaderManager()}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	// Position (2 floats) followed by texture coordinate (2 floats).
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 16, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 16, gl.PtrOffset(8))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &s.texture)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	// Nearest filtering keeps single pixels crisp when the window is scaled.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	displayLogger.Printf("surface %dx%d: vao=%d vbo=%d tex=%d", w, h, s.vao, s.vbo, s.texture)
	return s
}

// Upload copies buf into the texture. A buffer of a different size than the
// surface is skipped with a warning.
func (s *Surface) Upload(buf *raster.Buffer) {
	if buf.Width() != s.w || buf.Height() != s.h {
		log.Printf("WARNING: canvas %dx%d does not match surface %dx%d, skipping upload",
			buf.Width(), buf.Height(), s.w, s.h)
		return
	}
	start := time.Now()
	img := buf.Image()
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(s.w), int32(s.h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	s.stats.Uploads++
	s.stats.LastUploadTimeUs = float64(time.Since(start).Nanoseconds()) / 1000.0
}

// Draw fills the viewport with the canvas texture.
func (s *Surface) Draw() {
	s.shaders.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.texture)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (s *Surface) Stats() Stats { return s.stats }

// Delete releases the GL objects.
func (s *Surface) Delete() {
	gl.DeleteTextures(1, &s.texture)
	gl.DeleteBuffers(1, &s.vbo)
	gl.DeleteVertexArrays(1, &s.vao)
	s.shaders.Delete()
}
