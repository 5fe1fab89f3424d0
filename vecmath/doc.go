// Package vecmath provides the quaternion and vector primitives the codec
// samples, ranges, quantizes, and measures error against.
//
// Two precisions are defined side by side: Quat/Vec3 in float64, used
// wherever a raw clip is sampled or an error metric is accumulated, and
// QuatF32/Vec3F32 in float32, used for the values a decoder actually
// reconstructs at runtime. Keeping them distinct types (rather than a single
// generic type) keeps the accumulation precision of errmetric separate from
// the reconstruction precision callers observe.
package vecmath
