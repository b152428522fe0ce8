//go:build debug

package debug

import "log"

func Printf(msg string, args ...any) {
	log.Printf("vcat: "+msg, args...)
}
