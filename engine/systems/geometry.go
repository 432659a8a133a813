package systems

import (
	m "math"

	"github.com/spaghettifunk/lumen/engine/core"
	"github.com/spaghettifunk/lumen/engine/renderer/metadata"
)

// GeometrySystem builds the CPU-side mesh data the renderer uploads.
// All geometry in the demo is generated or authored once at startup.
type GeometrySystem struct{}

func NewGeometrySystem() *GeometrySystem {
	return &GeometrySystem{}
}

/**
 * @brief Generates a UV sphere of unit radius with position-only vertices.
 * The grid has (latSegments+1) rows of (lonSegments+1) shared vertices in
 * row-major order and two counter-clockwise triangles per grid quad, for
 * 6*latSegments*lonSegments indices total.
 *
 * @param latSegments Number of latitude segments. Defaults to one if zero.
 * @param lonSegments Number of longitude segments. Defaults to one if zero.
 * @param name The name of the generated geometry.
 * @return The geometry configuration.
 */
func (gs *GeometrySystem) GenerateSphereConfig(latSegments, lonSegments uint32, name string) *metadata.GeometryConfig {
	if latSegments < 1 {
		core.LogWarn("latSegments must be a positive number. Defaulting to one.")
		latSegments = 1
	}
	if lonSegments < 1 {
		core.LogWarn("lonSegments must be a positive number. Defaulting to one.")
		lonSegments = 1
	}

	config := &metadata.GeometryConfig{
		Name: name,
		Attributes: []metadata.VertexAttribute{
			{Name: "position", Size: 3},
		},
		Vertices: make([]float32, 0, (latSegments+1)*(lonSegments+1)*3),
		Indices:  make([]uint32, 0, latSegments*lonSegments*6),
	}

	for y := uint32(0); y <= latSegments; y++ {
		for x := uint32(0); x <= lonSegments; x++ {
			u := float64(x) / float64(lonSegments)
			v := float64(y) / float64(latSegments)
			xPos := float32(m.Cos(u*2.0*m.Pi) * m.Sin(v*m.Pi))
			yPos := float32(m.Cos(v * m.Pi))
			zPos := float32(m.Sin(u*2.0*m.Pi) * m.Sin(v*m.Pi))
			config.Vertices = append(config.Vertices, xPos, yPos, zPos)
		}
	}

	for i := uint32(0); i < latSegments; i++ {
		for j := uint32(0); j < lonSegments; j++ {
			config.Indices = append(config.Indices,
				i*(lonSegments+1)+j,
				(i+1)*(lonSegments+1)+j,
				(i+1)*(lonSegments+1)+j+1,
				i*(lonSegments+1)+j,
				(i+1)*(lonSegments+1)+j+1,
				i*(lonSegments+1)+j+1,
			)
		}
	}

	return config
}

/**
 * @brief Generates a non-indexed cube with position and normal attributes,
 * 6 faces of 2 triangles each, centered on the origin.
 *
 * @param width The cube extent on x. Defaults to one if zero.
 * @param height The cube extent on y. Defaults to one if zero.
 * @param depth The cube extent on z. Defaults to one if zero.
 * @param name The name of the generated geometry.
 * @return The geometry configuration.
 */
func (gs *GeometrySystem) GenerateCubeConfig(width, height, depth float32, name string) *metadata.GeometryConfig {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1.0
	}

	hw := width * 0.5
	hh := height * 0.5
	hd := depth * 0.5

	vertices := []float32{
		// back face (-z)
		-hw, -hh, -hd, 0, 0, -1,
		hw, hh, -hd, 0, 0, -1,
		hw, -hh, -hd, 0, 0, -1,
		hw, hh, -hd, 0, 0, -1,
		-hw, -hh, -hd, 0, 0, -1,
		-hw, hh, -hd, 0, 0, -1,
		// front face (+z)
		-hw, -hh, hd, 0, 0, 1,
		hw, -hh, hd, 0, 0, 1,
		hw, hh, hd, 0, 0, 1,
		hw, hh, hd, 0, 0, 1,
		-hw, hh, hd, 0, 0, 1,
		-hw, -hh, hd, 0, 0, 1,
		// left face (-x)
		-hw, hh, hd, -1, 0, 0,
		-hw, hh, -hd, -1, 0, 0,
		-hw, -hh, -hd, -1, 0, 0,
		-hw, -hh, -hd, -1, 0, 0,
		-hw, -hh, hd, -1, 0, 0,
		-hw, hh, hd, -1, 0, 0,
		// right face (+x)
		hw, hh, hd, 1, 0, 0,
		hw, -hh, -hd, 1, 0, 0,
		hw, hh, -hd, 1, 0, 0,
		hw, -hh, -hd, 1, 0, 0,
		hw, hh, hd, 1, 0, 0,
		hw, -hh, hd, 1, 0, 0,
		// bottom face (-y)
		-hw, -hh, -hd, 0, -1, 0,
		hw, -hh, -hd, 0, -1, 0,
		hw, -hh, hd, 0, -1, 0,
		hw, -hh, hd, 0, -1, 0,
		-hw, -hh, hd, 0, -1, 0,
		-hw, -hh, -hd, 0, -1, 0,
		// top face (+y)
		-hw, hh, -hd, 0, 1, 0,
		hw, hh, hd, 0, 1, 0,
		hw, hh, -hd, 0, 1, 0,
		hw, hh, hd, 0, 1, 0,
		-hw, hh, -hd, 0, 1, 0,
		-hw, hh, hd, 0, 1, 0,
	}

	return &metadata.GeometryConfig{
		Name: name,
		Attributes: []metadata.VertexAttribute{
			{Name: "position", Size: 3},
			{Name: "normal", Size: 3},
		},
		Vertices: vertices,
	}
}

/**
 * @brief Returns the hand-authored irregular hexahedron with per-vertex
 * normal and color attributes: 6 faces of 6 vertices each, non-indexed.
 * The slanted top faces and the speckled green palette are part of the
 * authored look and are not generated.
 *
 * @param name The name of the geometry.
 * @return The geometry configuration.
 */
func (gs *GeometrySystem) CrystalConfig(name string) *metadata.GeometryConfig {
	vertices := []float32{
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.131538, 0.75865, 0.218959,
		0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.678865, 0.934693, 0.519416,
		0.5, 0.65, -0.5, 0.0, 0.0, -1.0, 0.0345721, 0.85297, 0.00769819,
		0.5, 0.65, -0.5, 0.0, 0.0, -1.0, 0.0668422, 0.8686773, 0.1930436,
		-0.5, 1.3, -0.75, 0.0, 0.0, -1.0, 0.42, 0.0, 0.4,
		-0.5, 0.5, -0.5, 0.0, 0.0, -1.0, 0.526929, 0.7653919, 0.701191,

		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.762198, 0.90474645, 0.328234,
		0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.75641, 0.7365339, 0.198255,
		0.5, 1.3, 0.75, 0.0, 0.0, 1.0, 0.42, 0.0, 0.4,
		0.5, 1.3, 0.75, 0.0, 0.0, 1.0, 0.42, 0.0, 0.4,
		-0.5, 0.65, 0.5, 0.0, 0.0, 1.0, 0.2753356, 0.70726859, 0.1884707,
		-0.5, 0.5, 0.5, 0.0, 0.0, 1.0, 0.436411, 0.9477732, 0.274907,

		-0.5, 0.65, 0.5, -1.0, 0.0, 0.0, 0.166507, 0.897656, 0.0605643,
		-0.5, 1.3, -0.75, -1.0, 0.0, 0.0, 0.42, 0.0, 0.4,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.004523, 0.8319033, 0.493977,
		-0.5, 0.5, -0.5, -1.0, 0.0, 0.0, 0.0907329, 0.90737491, 0.384142,
		-0.5, 0.5, 0.5, -1.0, 0.0, 0.0, 0.1913817, 0.8464446, 0.050084,
		-0.5, 0.65, 0.5, -1.0, 0.0, 0.0, 0.1770205, 0.7125365, 0.1688455,

		0.5, 1.3, 0.75, 1.0, 0.0, 0.0, 0.42, 0.0, 0.4,
		0.5, 0.65, -0.5, 1.0, 0.0, 0.0, 0.069543, 0.725412, 0.2888572,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 0.306322, 0.513274, 0.2845982,
		0.5, 0.5, -0.5, 1.0, 0.0, 0.0, 0.2841511, 0.9415395, 0.1467917,
		0.5, 0.5, 0.5, 1.0, 0.0, 0.0, 0.49848, 0.748293, 0.3890737,
		0.5, 1.3, 0.75, 1.0, 0.0, 0.0, 0.42, 0.0, 0.4,

		-0.5, 0.5, -0.5, 0.0, -1.0, 0.0, 0.14, 0.98039, 0.4392157,
		0.5, 0.5, -0.5, 0.0, -1.0, 0.0, 0.13, 0.744, 0.55,
		0.5, 0.5, 0.5, 0.0, -1.0, 0.0, 0.184204, 0.7212752, 0.130427,
		0.5, 0.5, 0.5, 0.0, -1.0, 0.0, 0.274588, 0.7414293, 0.70982,
		-0.5, 0.5, 0.5, 0.0, -1.0, 0.0, 0.845576, 0.955409, 0.148152,
		-0.5, 0.5, -0.5, 0.0, -1.0, 0.0, 0.408767, 0.7564899, 0.488515,

		-0.5, 0.7, -0.5, 0.0, 1.0, 0.0, 0.0961095, 0.7199757, 0.629269,
		0.5, 0.65, -0.5, 0.0, 1.0, 0.0, 0.651254, 0.803073, 0.476432,
		0.5, 0.7, 0.5, 0.0, 1.0, 0.0, 0.20325, 0.901673, 0.142021,
		0.5, 0.7, 0.5, 0.0, 1.0, 0.0, 0.410313, 0.885648, 0.162199,
		-0.5, 0.65, 0.5, 0.0, 1.0, 0.0, 0.365339, 0.9135109, 0.455307,
		-0.5, 0.7, -0.5, 0.0, 1.0, 0.0, 0.0817561, 0.462245, 0.632739,
	}

	return &metadata.GeometryConfig{
		Name: name,
		Attributes: []metadata.VertexAttribute{
			{Name: "position", Size: 3},
			{Name: "normal", Size: 3},
			{Name: "color", Size: 3},
		},
		Vertices: vertices,
	}
}
