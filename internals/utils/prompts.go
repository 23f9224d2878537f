package utils

import (
	"errors"
	"strings"

	"github.com/manifoldco/promptui"
)

// ErrAborted is returned when the user aborts a prompt (ctrl+c)
var ErrAborted = errors.New("aborted")

// StringPrompt runs the prompt and returns the trimmed input
func StringPrompt(prompt *promptui.Prompt) (string, error) {
	res, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimSpace(res), nil
}

// NotEmpty is a promptui validator that rejects blank input
func NotEmpty(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("you have to enter something")
	}
	return nil
}
