// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package split

import (
	"fmt"
	"regexp"
	"strings"
)

// markdownLinkRe matches both image links ![alt](path) and plain links
// [text](path).
var markdownLinkRe = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)]+)\)`)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".bmp"}

// isImagePath reports whether path points at an image file.
func isImagePath(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// AdjustRelativeLinks rewrites relative image links in line for an output
// directory levelsUp levels below the source directory. The downstream
// editor resolves image paths relative to the file that references them, so
// "./diagram.svg" must become "../diagram.svg" once the section file moves
// one level down. Plain document links, absolute paths, URLs, and links
// already prefixed with "../" are left alone.
func AdjustRelativeLinks(line string, levelsUp int) string {
	if levelsUp == 0 {
		return line
	}

	return markdownLinkRe.ReplaceAllStringFunc(line, func(match string) string {
		m := markdownLinkRe.FindStringSubmatch(match)
		bang, text, path := m[1], m[2], strings.TrimSpace(m[3])

		if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
			return match
		}
		if strings.HasPrefix(path, "/") {
			return match
		}

		if bang != "!" && !isImagePath(path) {
			return match
		}
		if strings.HasPrefix(path, "../") {
			return match
		}

		up := strings.Repeat("../", levelsUp)
		return fmt.Sprintf("%s[%s](%s%s)", bang, text, up, strings.TrimPrefix(path, "./"))
	})
}
