// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() *Matrix4 {
	m := &Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix as the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// SetTranslation sets this matrix to a translation matrix from the specified x, y and z values.
func (m *Matrix4) SetTranslation(x, y, z float32) {
	m.SetIdentity()
	m[12] = x
	m[13] = y
	m[14] = z
}

// SetRotationX sets this matrix to a rotation matrix of angle theta around the X axis.
func (m *Matrix4) SetRotationX(theta float32) {
	c := Cos(theta)
	s := Sin(theta)
	m.SetIdentity()
	m[5] = c
	m[6] = s
	m[9] = -s
	m[10] = c
}

// SetRotationZ sets this matrix to a rotation matrix of angle theta around the Z axis.
func (m *Matrix4) SetRotationZ(theta float32) {
	c := Cos(theta)
	s := Sin(theta)
	m.SetIdentity()
	m[0] = c
	m[1] = s
	m[4] = -s
	m[5] = c
}

// Mul returns this matrix times other matrix (this matrix is unchanged)
func (m *Matrix4) Mul(other *Matrix4) *Matrix4 {
	nm := &Matrix4{}
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			nm[c*4+r] = sum
		}
	}
	return nm
}

// TranslationRotationXZ returns the matrix that first rotates about Z,
// then about X (Euler order XYZ with no Y rotation), then translates by pos.
// This is the composition used for posed solids in the model scene.
func TranslationRotationXZ(pos Vector3, rotX, rotZ float32) *Matrix4 {
	t := &Matrix4{}
	t.SetTranslation(pos.X, pos.Y, pos.Z)
	rx := &Matrix4{}
	rx.SetRotationX(rotX)
	rz := &Matrix4{}
	rz.SetRotationZ(rotZ)
	return t.Mul(rx).Mul(rz)
}
