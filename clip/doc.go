// Package clip holds the in-memory skeleton and raw clip model the writer
// compresses from and the error metric samples against: bones, skeletons,
// bind-pose transforms, and per-bone rotation/translation tracks sampled at
// a fixed rate.
//
// Raw clips and skeletons are produced by a reader outside this package's
// scope and dropped once compression completes; nothing here is retained
// by the compressed artifact.
package clip
