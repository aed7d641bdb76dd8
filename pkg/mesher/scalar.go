package mesher

import "github.com/go-gl/mathgl/mgl32"

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func vabs(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{absf(v.X()), absf(v.Y()), absf(v.Z())}
}
