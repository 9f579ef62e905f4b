package utils

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
)

// SplitChatLine splits a line of the form "speaker: text" into its parts.
// The speaker is lowercased and trimmed; the text keeps its inner spacing.
func SplitChatLine(line string) (speaker, text string, err error) {
	speaker, text, found := strings.Cut(line, ":")
	speaker = strings.ToLower(strings.TrimSpace(speaker))
	if !found || speaker == "" {
		return "", "", fmt.Errorf("%q: %w", line, kerrors.ErrMalformedChatLine)
	}
	return speaker, strings.TrimSpace(text), nil
}
