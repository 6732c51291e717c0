package main

import (
	"fmt"
	"strings"

	"github.com/Faultbox/midgard-motor/internal/game/scenario"
)

// formatFrame renders a frame as one line of key=value pairs.
func formatFrame(f scenario.Frame) string {
	var b strings.Builder
	fields := f.Fields()
	for el := fields.Front(); el != nil; el = el.Next() {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch v := el.Value.(type) {
		case float32:
			fmt.Fprintf(&b, "%s=%.4f", el.Key, v)
		default:
			fmt.Fprintf(&b, "%s=%v", el.Key, v)
		}
	}
	return b.String()
}
