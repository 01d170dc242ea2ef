// Package opengl provides an OpenGL 4.1 Device for the spritetext package.
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/spritetext"
)

var (
	// ErrShaderCompile is returned when a shader fails to compile.
	ErrShaderCompile = errors.New("opengl: shader compilation failed")
	// ErrShaderLink is returned when the program fails to link.
	ErrShaderLink = errors.New("opengl: shader program linking failed")
)

// Device owns the GL objects used to draw glyph quads: the shader
// program, vertex array, dynamic vertex buffer, shared index buffer and
// the atlas texture.
type Device struct {
	shader   uint32
	vao, vbo uint32
	ebo      uint32
	atlasTex uint32
	projLoc  int32
	texLoc   int32
	width    int
	height   int
}

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D fontAtlas;

void main() {
    FragColor = texture(fontAtlas, TexCoord);
}
` + "\x00"

// NewDevice creates the GL objects and uploads atlas as the font texture.
// A GL context must be current. width and height set the pixel-space
// projection (top-left origin).
func NewDevice(atlas *image.NRGBA, width, height int) (*Device, error) {
	if atlas == nil {
		return nil, fmt.Errorf("%w: nil atlas image", spritetext.ErrAtlasLoad)
	}

	d := &Device{}

	var err error
	d.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	d.projLoc = gl.GetUniformLocation(d.shader, gl.Str("projection\x00"))
	d.texLoc = gl.GetUniformLocation(d.shader, gl.Str("fontAtlas\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	// Dynamic vertex buffer, overwritten on every upload
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	vertexSize := int(unsafe.Sizeof(spritetext.Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, spritetext.MaxBatchQuads*4*vertexSize, nil, gl.DYNAMIC_DRAW)

	// Shared index buffer, uploaded once. The element binding is VAO state,
	// so it stays bound for the VAO's lifetime.
	indices := spritetext.IndexBuffer(spritetext.MaxBatchQuads)
	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	// Vertex layout: Pos (3 floats) + TexCoord (2 floats)
	stride := int32(vertexSize)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(spritetext.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	d.atlasTex = createAtlasTexture(atlas)

	gl.UseProgram(d.shader)
	gl.Uniform1i(d.texLoc, 0)
	d.Resize(width, height)

	return d, nil
}

// AtlasTextureID returns the OpenGL texture ID of the font atlas.
func (d *Device) AtlasTextureID() uint32 {
	return d.atlasTex
}

// Resize updates the projection for a new viewport size.
func (d *Device) Resize(width, height int) {
	d.width = width
	d.height = height
	if width <= 0 || height <= 0 {
		return
	}

	proj := mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	gl.UseProgram(d.shader)
	gl.UniformMatrix4fv(d.projLoc, 1, false, &proj[0])
}

// Bind activates the program, atlas texture and vertex array.
func (d *Device) Bind() {
	gl.UseProgram(d.shader)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.atlasTex)
	gl.BindVertexArray(d.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
}

// UploadVertices overwrites the start of the vertex buffer with verts.
// Callers never pass more than MaxBatchQuads quads.
func (d *Device) UploadVertices(verts []spritetext.Vertex) {
	if len(verts) == 0 {
		return
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*int(unsafe.Sizeof(spritetext.Vertex{})), gl.Ptr(verts))
}

// DrawQuads draws quads quads from the start of the vertex buffer.
func (d *Device) DrawQuads(quads int) {
	if quads <= 0 {
		return
	}
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(quads*6), gl.UNSIGNED_SHORT, 0)
}

// Delete releases OpenGL resources.
func (d *Device) Delete() {
	if d.atlasTex != 0 {
		gl.DeleteTextures(1, &d.atlasTex)
	}
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.shader != 0 {
		gl.DeleteProgram(d.shader)
	}
}

// createAtlasTexture uploads the straight-alpha atlas as an RGBA texture. Pixel-art fonts
// use nearest magnification; minification is mip-mapped.
func createAtlasTexture(img *image.NRGBA) uint32 {
	b := img.Bounds()

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	// Rows may be padded; Stride is in bytes, UNPACK_ROW_LENGTH in pixels.
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return tex
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrShaderLink, gl.GoStr(&log[0]))
	}

	return program, nil
}

// compileShader compiles one shader stage.
func compileShader(source string, stage uint32) (uint32, error) {
	shader := gl.CreateShader(stage)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, gl.GoStr(&log[0]))
	}
	return shader, nil
}

var _ spritetext.Device = (*Device)(nil)
