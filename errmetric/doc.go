// Package errmetric measures the worst-case object-space positional
// deviation between a raw clip and a lossy reconstruction of it, sampled
// at the clip's native grid plus its exact duration endpoint.
package errmetric
