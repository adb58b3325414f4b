// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

//go:build debug

package obdd

import (
	"log"
	"os"
)

const debugEnabled = true

func init() {
	log.SetOutput(os.Stderr)
}

// debugLog is a no-op in non-debug builds; see debug_off.go.
func debugLog(format string, args ...interface{}) {
	log.Printf(format, args...)
}
