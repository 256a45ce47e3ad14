package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCamera(mode ProjectionMode) *Camera {
	c := NewCamera(mode, DefaultBuildVolume())
	c.Reshape(800, 600)
	return c
}

func TestParseProjectionMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ProjectionMode
		wantErr bool
	}{
		{"", Orthographic, false},
		{"ortho", Orthographic, false},
		{"Orthographic", Orthographic, false},
		{" perspective ", Perspective, false},
		{"persp", Perspective, false},
		{"fisheye", Orthographic, true},
	}
	for _, tc := range tests {
		got, err := ParseProjectionMode(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "perspective", Perspective.String())
}

func TestCamera_ReshapeOrthographic(t *testing.T) {
	c := newTestCamera(Orthographic)

	assert.InDelta(t, 200.0, c.Distance(), 0)
	assert.InDelta(t, 0.9*600/200.0, c.Nav.Scale, 1e-12)

	// pixel-unit ortho box
	edge := c.Projection().Mul4x1(mgl64.Vec4{400, 300, -1, 1})
	assert.InDelta(t, 1.0, edge.X(), 1e-12)
	assert.InDelta(t, 1.0, edge.Y(), 1e-12)

	// near/far at 0.1 and 3*distance
	near := c.Projection().Mul4x1(mgl64.Vec4{0, 0, -0.1, 1})
	far := c.Projection().Mul4x1(mgl64.Vec4{0, 0, -600, 1})
	assert.InDelta(t, -1.0, near.Z()/near.W(), 1e-9)
	assert.InDelta(t, 1.0, far.Z()/far.W(), 1e-9)
}

func TestCamera_ReshapePerspective(t *testing.T) {
	c := newTestCamera(Perspective)

	assert.Equal(t, 1.0, c.Nav.Scale)
	want := mgl64.Perspective(mgl64.DegToRad(60), 800.0/600.0, 10, 600)
	assert.True(t, want.ApproxEqualThreshold(c.Projection(), 1e-12))
}

func TestCamera_ReshapeClampsDegenerateSize(t *testing.T) {
	c := NewCamera(Orthographic, DefaultBuildVolume())
	c.Reshape(0, -5)

	w, h := c.Size()
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
	assert.Greater(t, c.Nav.Scale, 0.0)
}

func TestCamera_ResetRestoresDefaults(t *testing.T) {
	for _, mode := range []ProjectionMode{Orthographic, Perspective} {
		c := newTestCamera(mode)
		fresh := newTestCamera(mode)

		c.RotateBy(Trackball(mgl64.Vec2{0, 0}, mgl64.Vec2{0.3, 0.2}, c.BallRadius(0)))
		c.PanBy(mgl64.Vec2{12, -7})
		require.True(t, c.ZoomBy(1.05, &mgl64.Vec2{30, 40}))
		require.True(t, c.ZoomBy(3, nil))
		c.RotateBy(Trackball(mgl64.Vec2{-0.5, 0}, mgl64.Vec2{0.1, 0.6}, c.BallRadius(0)))

		c.Reset()
		c.ResetView(0.9)

		assert.Equal(t, QuatIdent(), c.Orientation, mode.String())
		assert.Equal(t, fresh.Nav, c.Nav, mode.String())
		assert.True(t, fresh.View().ApproxEqualThreshold(c.View(), 1e-12), mode.String())
	}
}

func TestCamera_ResetViewRejectsBadFill(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.ResetView(0)
	assert.InDelta(t, 0.9*600/200.0, c.Nav.Scale, 1e-12)
	c.ResetView(math.NaN())
	assert.InDelta(t, 0.9*600/200.0, c.Nav.Scale, 1e-12)
}

func TestCamera_ZoomKeepsPointUnderCursor(t *testing.T) {
	pixels := [][2]float64{{400, 300}, {10, 20}, {790, 123}, {555, 590}}
	factors := []float64{1.05, 1 / 1.05, 1.1, 3, 0.2}

	for _, mode := range []ProjectionMode{Orthographic, Perspective} {
		for _, px := range pixels {
			for _, f := range factors {
				c := newTestCamera(mode)
				c.PanBy(mgl64.Vec2{5, -3})

				p, err := c.WindowToWorld(px[0], px[1])
				require.NoError(t, err)

				about := p.Vec2()
				require.True(t, c.ZoomBy(f, &about))

				q, err := c.WindowToWorld(px[0], px[1])
				require.NoError(t, err)
				tol := 1e-6 * math.Max(1, p.Len())
				assert.InDelta(t, p.X(), q.X(), tol, "%v px=%v f=%v", mode, px, f)
				assert.InDelta(t, p.Y(), q.Y(), tol, "%v px=%v f=%v", mode, px, f)
				assert.InDelta(t, p.Z(), q.Z(), tol, "%v px=%v f=%v", mode, px, f)
			}
		}
	}
}

func TestCamera_ZoomRejectsNonPositiveFactor(t *testing.T) {
	c := newTestCamera(Orthographic)
	before := c.Nav

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.False(t, c.ZoomBy(f, nil), "factor %v", f)
	}
	assert.False(t, c.ZoomBy(2, &mgl64.Vec2{math.NaN(), 0}))
	assert.Equal(t, before, c.Nav)
}

func TestCamera_ZoomAboutOriginScalesOnly(t *testing.T) {
	c := newTestCamera(Orthographic)
	s := c.Nav.Scale
	require.True(t, c.ZoomBy(2, nil))
	assert.InDelta(t, 2*s, c.Nav.Scale, 1e-12)
	assert.Equal(t, mgl64.Vec2{0, 0}, c.Nav.Pan)
}

func TestCamera_PanFollowsCursor(t *testing.T) {
	c := newTestCamera(Orthographic)

	a, err := c.WindowToWorld(300, 300)
	require.NoError(t, err)
	b, err := c.WindowToWorld(400, 300)
	require.NoError(t, err)

	// 100 pixels at scale 2.7
	assert.InDelta(t, 100/2.7, b.X()-a.X(), 1e-9)
	assert.InDelta(t, 0.0, b.Y()-a.Y(), 1e-9)

	c.PanBy(b.Sub(a).Vec2())
	assert.InDelta(t, 100/2.7, c.Nav.Pan.X(), 1e-9)

	// the point that was under x=300 is now under x=400
	moved, err := c.WindowToWorld(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, a.X(), moved.X(), 1e-9)
}

func TestCamera_WindowToWorldFlipsY(t *testing.T) {
	c := newTestCamera(Orthographic)

	top, err := c.WindowToWorld(400, 0)
	require.NoError(t, err)
	bottom, err := c.WindowToWorld(400, 600)
	require.NoError(t, err)

	assert.Greater(t, top.Y(), bottom.Y())
	assert.InDelta(t, -600.0, top.Z(), 1e-9)
}

func TestCamera_FitToBoundsCentersModel(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.PanBy(mgl64.Vec2{50, 50})

	b := Bounds{Min: mgl64.Vec3{10, 20, 0}, Max: mgl64.Vec3{50, 100, 30}}
	c.FitToBounds(b)

	assert.Equal(t, mgl64.Vec2{70, 40}, c.Nav.Pan)
	assert.InDelta(t, 600/200.0*200/80.0, c.Nav.Scale, 1e-12)

	center := b.Center()
	win := WorldToScreen(center, c.View(), c.Projection(), c.Viewport())
	assert.InDelta(t, 400.0, win.X(), 1e-9)
	assert.InDelta(t, 300.0, win.Y(), 1e-9)

	// the larger planar extent (80 along y) spans distance*scale0 pixels
	lo := WorldToScreen(mgl64.Vec3{30, 20, 15}, c.View(), c.Projection(), c.Viewport())
	hi := WorldToScreen(mgl64.Vec3{30, 100, 15}, c.View(), c.Projection(), c.Viewport())
	assert.InDelta(t, 600.0, hi.Y()-lo.Y(), 1e-9)
}

func TestCamera_FitToBoundsPerspectiveOnlyCenters(t *testing.T) {
	c := newTestCamera(Perspective)
	c.FitToBounds(Bounds{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{20, 20, 5}})

	assert.Equal(t, 1.0, c.Nav.Scale)
	assert.Equal(t, mgl64.Vec2{90, 90}, c.Nav.Pan)
}

func TestCamera_FitToFlatBoundsKeepsScale(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.FitToBounds(Bounds{Min: mgl64.Vec3{100, 100, 0}, Max: mgl64.Vec3{100, 100, 10}})

	assert.InDelta(t, 600/200.0, c.Nav.Scale, 1e-12)
	assert.False(t, math.IsInf(c.Nav.Scale, 0))
}

func TestCamera_ModelVisibility(t *testing.T) {
	c := newTestCamera(Orthographic)
	b := Bounds{Min: mgl64.Vec3{80, 80, 0}, Max: mgl64.Vec3{120, 120, 20}}

	assert.True(t, c.Frustum().Intersects(b))

	c.PanBy(mgl64.Vec2{10000, 0})
	assert.False(t, c.Frustum().Intersects(b))
}

func TestCamera_SetBuildVolume(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.SetBuildVolume(BuildVolume{Width: 300, Depth: 250, Height: 200})

	assert.Equal(t, 300.0, c.Distance())
	assert.InDelta(t, 0.9*600/300.0, c.Nav.Scale, 1e-12)

	far := c.Projection().Mul4x1(mgl64.Vec4{0, 0, -900, 1})
	assert.InDelta(t, 1.0, far.Z()/far.W(), 1e-9)
}

func TestCamera_SetMode(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.SetMode(Perspective)
	assert.Equal(t, Perspective, c.Mode)
	assert.Equal(t, 1.0, c.Nav.Scale)
}

func TestCamera_ZoomIsClamped(t *testing.T) {
	for _, mode := range []ProjectionMode{Orthographic, Perspective} {
		c := newTestCamera(mode)
		base := c.Nav.Scale

		zoomAtCenter := func(f float64) bool {
			p, err := c.WindowToWorld(400, 300)
			require.NoError(t, err, "%v", mode)
			about := p.Vec2()
			return c.ZoomBy(f, &about)
		}

		for i := 0; i < 1000; i++ {
			zoomAtCenter(1 / 1.1)
		}
		assert.InDelta(t, base*MinZoom, c.Nav.Scale, base*MinZoom*1e-9, "%v", mode)
		assert.False(t, zoomAtCenter(1/1.1), "%v: already at the floor", mode)

		require.True(t, zoomAtCenter(1.1), "%v: zooming back in still works", mode)
		assert.InDelta(t, base*MinZoom*1.1, c.Nav.Scale, base*MinZoom*1e-9, "%v", mode)

		for i := 0; i < 20000; i++ {
			zoomAtCenter(1.1)
		}
		assert.InDelta(t, base*MaxZoom, c.Nav.Scale, base*MaxZoom*1e-9, "%v", mode)
		assert.False(t, zoomAtCenter(1.1), "%v: already at the ceiling", mode)
		assert.True(t, zoomAtCenter(1/1.1), "%v", mode)
	}
}

func TestCamera_WindowToWorldAtMinimumZoom(t *testing.T) {
	c := newTestCamera(Orthographic)
	for c.ZoomBy(0.5, nil) {
	}

	a, err := c.WindowToWorld(300, 300)
	require.NoError(t, err)
	b, err := c.WindowToWorld(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, 100/c.Nav.Scale, b.X()-a.X(), 1e-6)

	c.PanBy(b.Sub(a).Vec2())
	moved, err := c.WindowToWorld(400, 300)
	require.NoError(t, err)
	assert.InDelta(t, a.X(), moved.X(), 1e-6)
}

func TestCamera_ZoomFromOversizedFitOnlyZoomsOut(t *testing.T) {
	c := newTestCamera(Orthographic)
	// a 0.01 mm part fits at 3 * 200 / 0.01, far past the ceiling
	c.FitToBounds(Bounds{Min: mgl64.Vec3{100, 100, 0}, Max: mgl64.Vec3{100.01, 100.01, 1}})
	fit := c.Nav.Scale
	require.Greater(t, fit, 3*MaxZoom)

	assert.False(t, c.ZoomBy(1.1, nil))
	assert.Equal(t, fit, c.Nav.Scale)
	assert.True(t, c.ZoomBy(1/1.1, nil))
	assert.Less(t, c.Nav.Scale, fit)
}

func TestCamera_FillCarriesAcrossReshape(t *testing.T) {
	c := newTestCamera(Orthographic)
	c.SetFill(0.8)
	assert.Equal(t, 0.8, c.Fill())
	assert.InDelta(t, 0.8*600/200.0, c.Nav.Scale, 1e-12)

	c.Reshape(1000, 400)
	assert.InDelta(t, 0.8*400/200.0, c.Nav.Scale, 1e-12)

	c.ResetView(0)
	assert.InDelta(t, 0.8*400/200.0, c.Nav.Scale, 1e-12)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		c.SetFill(bad)
		assert.Equal(t, 0.8, c.Fill(), "fill %v", bad)
	}
}
