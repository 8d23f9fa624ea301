package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeed_FlagWinsOverPositional(t *testing.T) {
	assert.Equal(t, "from flag", ResolveSeed("from flag", "positional"))
}

func TestResolveSeed_PositionalFallback(t *testing.T) {
	assert.Equal(t, "positional", ResolveSeed("", "positional"))
	assert.Equal(t, "positional", ResolveSeed("   ", " positional "))
}

func TestResolveSeed_EmptyNonInteractive(t *testing.T) {
	// Under go test stdin is not a terminal, so no prompt is attempted.
	assert.Equal(t, "", ResolveSeed("", ""))
}
