package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
)

// GPUViewUniformSource is the canonical WGSL definition of the ViewUniform struct.
// Matches GPUViewUniform layout exactly (96 bytes, WGSL aligned).
//
//go:embed assets/view_uniform.wgsl
var GPUViewUniformSource string

// GPUViewUniform is the GPU-aligned representation of the view uniform buffer.
// Size: 96 bytes.
type GPUViewUniform struct {
	ViewProj mgl32.Mat4 // offset  0: projection * view (mat4x4<f32>)
	Eye      mgl32.Vec3 // offset 64: eye position, real world (vec3<f32>)
	ZNear    float32    // offset 76: near plane distance of the projection
	Zoom     float32    // offset 80
	_pad     [3]float32 // offset 84: padding to 96 bytes
}

// Size returns the size of the GPUViewUniform struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (96)
func (g *GPUViewUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUViewUniform struct into a little-endian byte buffer suitable
// for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUViewUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.Eye[i]))
	}
	binary.LittleEndian.PutUint32(buf[76:], math.Float32bits(g.ZNear))
	binary.LittleEndian.PutUint32(buf[80:], math.Float32bits(g.Zoom))
	return buf
}
