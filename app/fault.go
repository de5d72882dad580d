package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"fbcon/console"
)

// fault puts a final message on the screen and halts. The code that
// faulted may have been holding the console lock mid-write; nothing else
// is making progress at this point, so clearing the lock state is safe
// and the only way to get the message out.
func (s *system) fault(v any) {
	if s.log != nil {
		s.log.WriteLineString(fmt.Sprintf("fault: %v", v))
	}
	if !console.Installed() {
		halt()
	}

	console.Handle().ForceUnlock()
	console.Printf("panic: %s\n", sanitize(fmt.Sprint(v)))
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		console.Printf("%s\n", sanitize(line))
	}

	if s.fb != nil {
		_ = s.fb.Present()
	}
	halt()
}

// sanitize keeps the fault path clear of runes the console would treat as
// fatal (it has glyphs for printable ASCII only).
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\t' {
			return ' '
		}
		if r < 0x20 || r > 0x7E {
			return '?'
		}
		return r
	}, s)
}

func halt() {
	select {}
}
