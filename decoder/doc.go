// Package decoder provides random-access sampling of a compressed clip
// container produced by the writer package. NewDecoder parses and
// validates a container once; DecodeBone and DecodePose then reconstruct
// bone poses at an arbitrary time without touching samples the caller
// did not ask for.
package decoder
