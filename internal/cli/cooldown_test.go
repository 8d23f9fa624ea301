package cli

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickCooldown_Deterministic(t *testing.T) {
	a := PickCooldown(rand.New(rand.NewSource(42)), false)
	b := PickCooldown(rand.New(rand.NewSource(42)), false)
	assert.Equal(t, a, b)
}

func TestPickCooldown_PoolMembership(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.Contains(t, generalCooldowns, PickCooldown(rng, false))
		assert.Contains(t, clinicalCooldowns, PickCooldown(rng, true))
	}
}

func TestCooldownMessages_AllAnnounceClosure(t *testing.T) {
	for _, msg := range append(append([]string{}, generalCooldowns...), clinicalCooldowns...) {
		assert.True(t, strings.HasPrefix(msg, "Session complete."), "message %q", msg)
	}
}
