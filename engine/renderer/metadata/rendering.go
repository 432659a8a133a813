package metadata

import "github.com/spaghettifunk/lumen/engine/math"

// PolygonMode selects how triangles are rasterized.
type PolygonMode int

const (
	PolygonModeFill PolygonMode = iota
	PolygonModeLine
)

// ProgramConfig names the GLSL sources of a shader program, as paths
// relative to the assets directory.
type ProgramConfig struct {
	Name         string
	VertexPath   string
	FragmentPath string
}

// GlobalState carries the per-frame values shared by every draw call.
type GlobalState struct {
	Projection math.Mat4
	View       math.Mat4
	ViewPos    math.Vec3
	LightPos   math.Vec3
	LightColor math.Vec3
}
