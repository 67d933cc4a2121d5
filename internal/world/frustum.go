package world

import (
	"jumpbed/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	frustumNear float32 = 0.1
	frustumFar  float32 = 1000.0
)

// Frustum represents the 6 planes of a view frustum for culling
type Frustum struct {
	planes [6]Plane // left, right, bottom, top, near, far
}

// Plane represents a plane in 3D space (ax + by + cz + d = 0)
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum extracts frustum planes from the camera's view-projection
// matrix (Gribb/Hartmann). For orthographic cameras Fovy is the view height.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.MatrixLookAt(camera.Position, camera.Target, camera.Up)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, frustumNear, frustumFar)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, frustumNear, frustumFar)
	}

	vp := rl.MatrixMultiply(view, proj)

	var f Frustum
	rows := [6]struct {
		x, y, z, w float32
	}{
		{vp.M3 + vp.M0, vp.M7 + vp.M4, vp.M11 + vp.M8, vp.M15 + vp.M12},  // left
		{vp.M3 - vp.M0, vp.M7 - vp.M4, vp.M11 - vp.M8, vp.M15 - vp.M12},  // right
		{vp.M3 + vp.M1, vp.M7 + vp.M5, vp.M11 + vp.M9, vp.M15 + vp.M13},  // bottom
		{vp.M3 - vp.M1, vp.M7 - vp.M5, vp.M11 - vp.M9, vp.M15 - vp.M13},  // top
		{vp.M3 + vp.M2, vp.M7 + vp.M6, vp.M11 + vp.M10, vp.M15 + vp.M14}, // near
		{vp.M3 - vp.M2, vp.M7 - vp.M6, vp.M11 - vp.M10, vp.M15 - vp.M14}, // far
	}
	for i, r := range rows {
		f.planes[i] = normalizePlane(Plane{
			normal:   rl.Vector3{X: r.x, Y: r.y, Z: r.z},
			distance: r.w,
		})
	}
	return f
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsBox reports whether any part of the box may be visible. It tests
// the box corner furthest along each plane normal, so it can keep boxes
// that sit just outside a frustum corner.
func (f *Frustum) ContainsBox(box physics.AABB) bool {
	for _, p := range f.planes {
		corner := box.Min
		if p.normal.X >= 0 {
			corner.X = box.Max.X
		}
		if p.normal.Y >= 0 {
			corner.Y = box.Max.Y
		}
		if p.normal.Z >= 0 {
			corner.Z = box.Max.Z
		}
		if rl.Vector3DotProduct(p.normal, corner)+p.distance < 0 {
			return false
		}
	}
	return true
}
