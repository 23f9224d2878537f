package commands

import (
	"os"
	"runtime"
)

var emojiEnabled = detectEmoji()

func detectEmoji() bool {
	if os.Getenv("CI") != "" || os.Getenv("WEBCRAFT_NO_EMOJI") != "" {
		return false
	}
	// raw cmd and powershell set SESSIONNAME, windows terminal does not
	if runtime.GOOS == "windows" && os.Getenv("SESSIONNAME") != "" {
		return false
	}
	return true
}

// SetEmoji enables or disables emoji output
func SetEmoji(enabled bool) {
	emojiEnabled = enabled
}

// Emoji returns the given string (usually a emoji) if the current terminal
// (probably) supports it
func Emoji(e string) string {
	if emojiEnabled {
		return e
	}
	return ""
}
