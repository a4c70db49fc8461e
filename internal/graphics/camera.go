package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	NearPlane float32 = 0.1
	FarPlane  float32 = 1000.0

	// DefaultFOV is the vertical field of view in radians
	DefaultFOV float32 = math.Pi / 2
	// DefaultYaw faces roughly along +Z
	DefaultYaw float32 = -1.5

	// pitchLimit keeps the view basis away from the poles
	pitchLimit float32 = math.Pi/2 - 1e-4
)

var (
	DefaultPosition = mgl32.Vec3{0, 260, 0}
	worldUp         = mgl32.Vec3{0, 1, 0}
)

// Matrices is the camera output consumed by the renderer
type Matrices struct {
	Proj mgl32.Mat4
	View mgl32.Mat4
}

// Camera handles the view and projection matrices. Angles are in radians;
// the frame is right-handed with +Y up.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	fov         float32
	aspectRatio float32

	matrices Matrices
}

func NewCamera(aspect float32) *Camera {
	return NewCameraWithFOV(aspect, DefaultFOV)
}

// NewCameraWithFOV is NewCamera with a custom vertical field of view (radians)
func NewCameraWithFOV(aspect, fov float32) *Camera {
	c := &Camera{
		position: DefaultPosition,
		yaw:      DefaultYaw,
		fov:      fov,
		matrices: Matrices{View: mgl32.Ident4()},
	}
	c.SetAspectRatio(aspect)
	return c
}

// SetAspectRatio recomputes the projection for a resized surface
func (c *Camera) SetAspectRatio(aspect float32) {
	c.aspectRatio = aspect
	c.matrices.Proj = mgl32.Perspective(c.fov, aspect, NearPlane, FarPlane)
}

// RotateBy turns the camera by the given deltas in degrees. Yaw wraps
// freely; pitch stays strictly inside (-90°, 90°).
func (c *Camera) RotateBy(dYaw, dPitch float32) {
	c.yaw += mgl32.DegToRad(dYaw)
	c.pitch = mgl32.Clamp(c.pitch+mgl32.DegToRad(dPitch), -pitchLimit, pitchLimit)
}

// Forward is the unit view direction
func (c *Camera) Forward() mgl32.Vec3 {
	y := float64(c.yaw)
	p := float64(c.pitch)
	return mgl32.Vec3{
		float32(math.Cos(y) * math.Cos(p)),
		float32(math.Sin(p)),
		float32(-math.Sin(y) * math.Cos(p)),
	}.Normalize()
}

// ForwardXZ is Forward projected on the horizontal plane
func (c *Camera) ForwardXZ() mgl32.Vec3 {
	y := float64(c.yaw)
	return mgl32.Vec3{float32(math.Cos(y)), 0, float32(-math.Sin(y))}.Normalize()
}

func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// MoveBy translates along right, world up and horizontal forward
func (c *Camera) MoveBy(dRight, dUp, dForward float32) {
	c.position = c.position.
		Add(c.ForwardXZ().Mul(dForward)).
		Add(c.Right().Mul(dRight)).
		Add(worldUp.Mul(dUp))
}

// ComputeMatrices rebuilds the view matrix from the current pose
func (c *Camera) ComputeMatrices() Matrices {
	c.matrices.View = mgl32.LookAtV(c.position, c.position.Add(c.Forward()), worldUp)
	return c.matrices
}

func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

func (c *Camera) Yaw() float32 {
	return c.yaw
}

func (c *Camera) Pitch() float32 {
	return c.pitch
}

func (c *Camera) FOV() float32 {
	return c.fov
}

func (c *Camera) AspectRatio() float32 {
	return c.aspectRatio
}

// Projection returns the cached projection matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return c.matrices.Proj
}

// View returns the last view matrix computed
func (c *Camera) View() mgl32.Mat4 {
	return c.matrices.View
}
