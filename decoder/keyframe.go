package decoder

// Keyframes returns the bracketing sample indices and interpolation
// fraction between them for time t (seconds), clamped to the clip's
// duration, exactly mirroring the writer's assumed sample layout so a
// decoded pose matches what clip.RawClip.SamplePose would have produced
// before compression.
func Keyframes(numSamples, sampleRate int, t float64) (frame0, frame1 int, alpha float64) {
	if numSamples <= 1 {
		return 0, 0, 0
	}

	step := 1.0 / float64(sampleRate)
	pos := t / step
	if pos < 0 {
		pos = 0
	}

	maxPos := float64(numSamples - 1)
	if pos > maxPos {
		pos = maxPos
	}

	frame0 = int(pos)
	if frame0 >= numSamples-1 {
		frame0 = numSamples - 2
	}
	frame1 = frame0 + 1
	alpha = pos - float64(frame0)

	return frame0, frame1, alpha
}
