package utils

import (
	"os"
	"strings"
)

// ReadArgOrFile returns the argument itself, or the content of a file if the
// argument starts with "@" (like curl does)
func ReadArgOrFile(arg string) ([]byte, error) {
	if name, ok := strings.CutPrefix(arg, "@"); ok {
		return os.ReadFile(name)
	}
	return []byte(arg), nil
}
