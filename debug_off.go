// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build !debug

package obdd

const debugEnabled = false

// debugLog discards its arguments outside of a debug build; its body is
// empty, so a call does nothing beyond evaluating its arguments.
func debugLog(format string, args ...interface{}) {}
