// Package readtime derives the estimated reading time shown on blog posts.
package readtime

import (
	"fmt"
	"strings"
)

// wordsPerMinute is the assumed reading speed.
const wordsPerMinute = 200

// Estimate returns the read-time label for the given content, computed
// as ceil(wordCount/200) minutes. Empty content yields "0 min read";
// there is no floor of one minute.
func Estimate(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	return fmt.Sprintf("%d min read", minutes)
}
