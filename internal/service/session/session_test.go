package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/sandevgo/weatherbot/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript_AppendOnly(t *testing.T) {
	tr := &Transcript{}
	tr.Append(core.Message{Role: core.RoleUser, Content: "hi"})
	tr.Append(core.Message{Role: core.RoleAssistant, Content: "Hello!"})

	msgs := tr.Messages()
	require.Len(t, msgs, 2)

	// mutating the copy leaves the transcript untouched
	msgs[0].Content = "changed"
	assert.Equal(t, "hi", tr.Messages()[0].Content)

	assert.Equal(t, []string{
		"🧍‍♀️ You: hi",
		"🤖 WeatherBot: Hello!",
	}, tr.Lines())
	assert.Equal(t, 2, tr.Len())
}

func TestStore_Lifecycle(t *testing.T) {
	store := NewStore()

	_, ok := store.Lookup("a")
	assert.False(t, ok)

	a := store.Get("a")
	require.NotNil(t, a)
	assert.Equal(t, "a", a.ID)
	assert.Zero(t, a.Transcript.Len())
	assert.Same(t, a, store.Get("a"))

	got, ok := store.Lookup("a")
	assert.True(t, ok)
	assert.Same(t, a, got)

	b := store.Get("b")
	assert.NotSame(t, a, b)
	assert.Equal(t, 2, store.Len())

	assert.True(t, store.Drop("a"))
	assert.False(t, store.Drop("a"))
	assert.Equal(t, 1, store.Len())
	assert.NotSame(t, a, store.Get("a"))
}

func TestStore_Concurrent(t *testing.T) {
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess := store.Get(fmt.Sprintf("s-%d", i%5))
			sess.Lock()
			defer sess.Unlock()
			sess.Transcript.Append(core.Message{Role: core.RoleUser, Content: "hi"})
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, store.Len())
	for i := 0; i < 5; i++ {
		assert.Equal(t, 10, store.Get(fmt.Sprintf("s-%d", i)).Transcript.Len())
	}
}
