package smalltalk

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// runesPerToken approximates token counts when no encoding is available.
const runesPerToken = 4

// tokenBudget caps text to a number of cl100k_base tokens.
type tokenBudget struct {
	max  int
	once sync.Once
	tk   *tiktoken.Tiktoken
}

func newTokenBudget(max int) *tokenBudget {
	return &tokenBudget{max: max}
}

func (b *tokenBudget) encoding() *tiktoken.Tiktoken {
	b.once.Do(func() {
		// The encoding is fetched on first use; offline we fall back to runes.
		tk, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			b.tk = tk
		}
	})
	return b.tk
}

// Truncate returns text cut to the budget. A non-positive budget disables it.
func (b *tokenBudget) Truncate(text string) string {
	if b.max <= 0 || text == "" {
		return text
	}

	tk := b.encoding()
	if tk == nil {
		return truncateRunes(text, b.max*runesPerToken)
	}

	tokens := tk.Encode(text, nil, nil)
	if len(tokens) <= b.max {
		return text
	}
	return tk.Decode(tokens[:b.max])
}

func truncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
