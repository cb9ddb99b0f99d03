package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName drops characters which cannot appear in a file name segment
// on this system, control characters and leading dots.
func CleanFileName(in string) string {
	reserved := invalidNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.Map(func(r rune) rune {
		if r < 0x20 || strings.ContainsRune(reserved, r) {
			return -1
		}
		return r
	}, in)
	if out = strings.TrimLeft(out, "."); out == "" {
		return badFileName
	}
	return out
}
