// Package writer compresses a clip.RawClip into a self-describing binary
// container: it runs every bone stream through the kernel package's four
// transforms, then assembles the fixed headers, packed bitsets, and
// variable-size data sections the section package defines into one
// contiguous, optionally envelope-compressed buffer.
package writer
