package smalltalk

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadConversations parses a training file. Conversations are separated by
// blank lines, each line is one statement and lines starting with # are
// comments.
func ReadConversations(r io.Reader) ([][]string, error) {
	var (
		conversations [][]string
		current       []string
	)

	flush := func() {
		if len(current) > 0 {
			conversations = append(conversations, current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "#"):
		default:
			current = append(current, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversations: %w", err)
	}
	flush()

	return conversations, nil
}
