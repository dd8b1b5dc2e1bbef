package tui

import "strings"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// statusLog feeds series warnings into the status line.
type statusLog struct{ last string }

func (s *statusLog) Write(p []byte) (int, error) {
	s.last = strings.TrimSpace(string(p))
	return len(p), nil
}
