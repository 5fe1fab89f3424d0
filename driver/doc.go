// Package driver enumerates the codec's supported (rotation format ×
// translation format × range-reduction flags) configurations, compresses
// a clip under each valid one, measures the resulting error against the
// source, and reports the outcome.
package driver
