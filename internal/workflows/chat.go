package workflows

import (
	"strings"

	"github.com/PolarWolf314/rsatrace/internal/pipeline"
	"github.com/PolarWolf314/rsatrace/internal/utils"
)

// ChatAction is what one line of interactive input asks for.
type ChatAction int

const (
	ChatSkip ChatAction = iota
	ChatSend
	ChatShowKeys
	ChatShowHistory
	ChatHelp
	ChatQuit
)

// ChatInput is a parsed line of interactive input.
type ChatInput struct {
	Action ChatAction
	From   pipeline.Party
	Text   string
}

// ParseChatInput interprets one line typed into the interactive session.
//
// Blank lines are skipped. Lines starting with "/" are commands: /keys,
// /history, /help and /quit (or /exit). Anything else must look like
// "alice: text" or "bob: text".
//
// Returns ErrMalformedChatLine or ErrUnknownParty for unusable lines.
func ParseChatInput(line string) (ChatInput, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return ChatInput{Action: ChatSkip}, nil
	}

	if strings.HasPrefix(line, "/") {
		switch strings.ToLower(strings.Fields(line)[0]) {
		case "/keys":
			return ChatInput{Action: ChatShowKeys}, nil
		case "/history":
			return ChatInput{Action: ChatShowHistory}, nil
		case "/quit", "/exit":
			return ChatInput{Action: ChatQuit}, nil
		default:
			return ChatInput{Action: ChatHelp}, nil
		}
	}

	speaker, text, err := utils.SplitChatLine(line)
	if err != nil {
		return ChatInput{}, err
	}
	from, err := pipeline.ParseParty(speaker)
	if err != nil {
		return ChatInput{}, err
	}

	return ChatInput{Action: ChatSend, From: from, Text: text}, nil
}
