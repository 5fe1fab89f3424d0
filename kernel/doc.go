// Package kernel implements the four ordered stream transforms that turn
// a bone stream's full-precision samples into the packed form the
// container writer serializes: rotation-form conversion, constant/default
// detection, per-clip range reduction, and fixed-point quantization.
//
// The transforms run in that order and are not commutative: conversion
// must fix W's sign before detection compares samples, detection must
// mark default/constant tracks before range reduction skips them, and
// range reduction must remap to [0,1] before quantization spends bits.
package kernel
