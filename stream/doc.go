// Package stream holds the mutable per-bone intermediate representation
// the compression kernel operates on: one BoneStream per bone, carrying
// rotation and translation sample sequences, default/constant flags, the
// retained constant sample when applicable, and per-track range.
//
// A stream exists only for the duration of one compression call; nothing
// here is retained by the finished container.
package stream
