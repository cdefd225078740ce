package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type weatherSection struct {
	APIKey  string        `env:"W_API_KEY,required,notEmpty" secret:"true"`
	BaseURL string        `env:"W_BASE_URL"`
	Timeout time.Duration `env:"W_TIMEOUT"`
	skipped string        `env:"W_SKIPPED"`
	NoTag   string
}

type appSection struct {
	EnableCLI  bool    `env:"A_ENABLE_CLI"`
	EnableHTTP bool    `env:"A_ENABLE_HTTP"`
	Owner      int64   `env:"A_OWNER"`
	Confidence float64 `env:"A_CONFIDENCE"`
}

func TestMarshalEnv(t *testing.T) {
	w := &weatherSection{
		APIKey:  "abc123",
		BaseURL: "http://localhost",
		Timeout: 10 * time.Second,
		skipped: "x",
		NoTag:   "y",
	}
	a := appSection{EnableCLI: true, Owner: 42, Confidence: 0.5}

	out, err := MarshalEnv([]any{w, a})
	require.NoError(t, err)
	assert.Equal(t,
		"W_API_KEY=abc123\n"+
			"W_BASE_URL=http://localhost\n"+
			"W_TIMEOUT=10s\n"+
			"A_ENABLE_CLI=true\n"+
			"A_OWNER=42\n"+
			"A_CONFIDENCE=0.5\n",
		out)
}

func TestMarshalEnv_MaskedSecrets(t *testing.T) {
	out, err := MarshalEnv([]any{&weatherSection{APIKey: "abc123"}}, WithMaskedSecrets())
	require.NoError(t, err)
	assert.Equal(t, "W_API_KEY=********\n", out)
}

func TestMarshalEnv_Empty(t *testing.T) {
	var nilSection *weatherSection
	out, err := MarshalEnv([]any{&appSection{}, nilSection})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMarshalEnv_NotStruct(t *testing.T) {
	_, err := MarshalEnv([]any{"nope"})
	assert.Error(t, err)
}

func TestMarshalEnv_ZeroValues(t *testing.T) {
	out, err := MarshalEnv([]any{&appSection{EnableCLI: true}}, WithZeroValues())
	require.NoError(t, err)
	assert.Equal(t,
		"A_ENABLE_CLI=true\n"+
			"A_ENABLE_HTTP=false\n"+
			"A_OWNER=0\n"+
			"A_CONFIDENCE=0\n",
		out)
}
