package starfire

import (
	"fmt"
	"strings"
)

// FormatHUD renders the status line shown above the arena.
func FormatHUD(score, health int, elapsedMillis int64) string {
	if health < 0 {
		health = 0
	}
	return fmt.Sprintf("Score: %d    Health: %s    Time: %ds",
		score, strings.Repeat("♥", health), elapsedMillis/1000)
}
