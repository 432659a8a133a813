package math

import (
	m "math"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Note that these are here in order to keep float32 trigonometry in one
 * place instead of sprinkling float64 conversions around the engine.
 */
func ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func ktan(x float32) float32 {
	return float32(m.Tan(float64(x)))
}

func ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

// Sin is the float32 sine, exported for callers outside this package.
func Sin(x float32) float32 { return ksin(x) }

// Cos is the float32 cosine, exported for callers outside this package.
func Cos(x float32) float32 { return kcos(x) }

/**
 * @brief Converts the supplied degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts the supplied radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

/**
 * Multiplies every component of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * Returns a unit-length copy of the provided vector.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

/**
 * @brief Returns the dot product between v and other. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The other vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func NewVec4FromVec3(v Vec3, w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 */
func (v Vec4) ToVec3() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// ------------------------------------------
// Mat4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out := Mat4{}
	out.Data[0] = 1.0
	out.Data[5] = 1.0
	out.Data[10] = 1.0
	out.Data[15] = 1.0
	return out
}

/**
 * @brief Returns the result of multiplying mt and other (in that order),
 * with both stored column-major.
 *
 * @param other The matrix to be multiplied on the right.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out.Data[col*4+row] = sum
		}
	}
	return out
}

/**
 * @brief Multiplies mt with the provided Vec4 and returns the result.
 */
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		mt.Data[0]*v.X + mt.Data[4]*v.Y + mt.Data[8]*v.Z + mt.Data[12]*v.W,
		mt.Data[1]*v.X + mt.Data[5]*v.Y + mt.Data[9]*v.Z + mt.Data[13]*v.W,
		mt.Data[2]*v.X + mt.Data[6]*v.Y + mt.Data[10]*v.Z + mt.Data[14]*v.W,
		mt.Data[3]*v.X + mt.Data[7]*v.Y + mt.Data[11]*v.Z + mt.Data[15]*v.W,
	}
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fovRadians The field of view in radians.
 * @param aspectRatio The aspect ratio.
 * @param nearClip The near clipping plane distance.
 * @param farClip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := ktan(fovRadians * 0.5)
	out := Mat4{}
	out.Data[0] = 1.0 / (aspectRatio * halfTanFov)
	out.Data[5] = 1.0 / halfTanFov
	out.Data[10] = -((farClip + nearClip) / (farClip - nearClip))
	out.Data[11] = -1.0
	out.Data[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return out
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := target.Sub(position).Normalize()
	xAxis := zAxis.Cross(up).Normalize()
	yAxis := xAxis.Cross(zAxis)

	out := Mat4{}
	out.Data[0] = xAxis.X
	out.Data[1] = yAxis.X
	out.Data[2] = -zAxis.X
	out.Data[3] = 0
	out.Data[4] = xAxis.Y
	out.Data[5] = yAxis.Y
	out.Data[6] = -zAxis.Y
	out.Data[7] = 0
	out.Data[8] = xAxis.Z
	out.Data[9] = yAxis.Z
	out.Data[10] = -zAxis.Z
	out.Data[11] = 0
	out.Data[12] = -xAxis.Dot(position)
	out.Data[13] = -yAxis.Dot(position)
	out.Data[14] = zAxis.Dot(position)
	out.Data[15] = 1.0
	return out
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->columns).
 */
func (mt Mat4) Transposed() Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out.Data[row*4+col] = mt.Data[col*4+row]
		}
	}
	return out
}

/**
 * @brief Creates and returns an inverse of the provided matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out := Mat4{}
	o := &out.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := 1.0 / (m[0]*o[0] + m[4]*o[1] + m[8]*o[2] + m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[12] = position.X
	out.Data[13] = position.Y
	out.Data[14] = position.Z
	return out
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out := NewMat4Identity()
	out.Data[0] = scale.X
	out.Data[5] = scale.Y
	out.Data[10] = scale.Z
	return out
}

/**
 * @brief Creates a rotation matrix around the y axis from the provided angle.
 *
 * @param angleRadians The y angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerY(angleRadians float32) Mat4 {
	out := NewMat4Identity()
	c := kcos(angleRadians)
	s := ksin(angleRadians)

	out.Data[0] = c
	out.Data[2] = -s
	out.Data[8] = s
	out.Data[10] = c
	return out
}
