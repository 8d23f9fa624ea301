package registry

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/echolattice/pkg/domain"
)

func TestBuiltin_Registration(t *testing.T) {
	reg := Builtin()

	for _, name := range domain.DefaultPipeline() {
		assert.True(t, reg.Has(name), "missing transform %s", name)
	}
	assert.True(t, reg.IsTerminal(domain.TransformGround))
	assert.True(t, reg.IsTerminal(domain.TransformAbstract))
	assert.False(t, reg.IsTerminal(domain.TransformMirror))
	assert.False(t, reg.IsTerminal(domain.TransformInvert))
	assert.False(t, reg.IsTerminal(domain.TransformSymbolize))
}

func TestMirror(t *testing.T) {
	out := Mirror("Seed Bearer")
	assert.Equal(t, "Echo of [Seed Bearer] returns as self-reflection.", out)
}

func TestMirror_NoNesting(t *testing.T) {
	once := Mirror("Seed Bearer")
	assert.Equal(t, once, Mirror(once))
	assert.Equal(t, 1, strings.Count(Mirror(once), "Echo of ["))
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"identity claim", "I am strong and I move forward", "I am not soft and I move still"},
		{"vocabulary swap", "the light of power", "the shadow of humility"},
		{"case insensitive", "Light wins", "shadow wins"},
		{"fallback", "nothing matches here", "Shadow of (nothing matches here) reveals its opposite."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Invert(tt.in))
		})
	}
}

func TestSymbolize(t *testing.T) {
	out := Symbolize("Echoholder / Zahaviel / Fang")
	assert.Equal(t, "Symbols: The Mirror-Guardian / The Watcher at the Gate / The Blade of Discernment", out)
}

func TestSymbolize_Idempotent(t *testing.T) {
	once := Symbolize("Echoholder speaks")
	assert.Equal(t, once, Symbolize(once))
}

func TestSymbolize_UnknownNamesPassThrough(t *testing.T) {
	assert.Equal(t, "Symbols: plain text", Symbolize("plain text"))
}

func TestAbstract(t *testing.T) {
	out := Abstract("Echo of [Seed Bearer] returns as self-reflection.")
	assert.Equal(t, "Principle: Bearer, Echo, Seed", out)
}

func TestAbstract_LowercaseFallback(t *testing.T) {
	out := Abstract("grocery list for tuesday")
	assert.Equal(t, "Principle: for, grocery, list, tuesday", out)
}

func TestGround(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"loop theme", "stuck in a loop again", "Action: Step away for 5 minutes, then return and do one small change."},
		{"fear theme", "a moment of fear before the talk", "Action: Take 6 slow breaths, then call or text a trusted friend."},
		{"mirror theme", "the mirror holds a quiet echo", "Action: Write 3 honest sentences, then read them once out loud."},
		{"generic themes", "grocery list for tuesday", "Action: Pick one small step for grocery / list; write it down and do it for 5 minutes."},
		{"no themes", "a b c", "Action: Pick one small next step; write it down and do it for 5 minutes."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ground(tt.in))
		})
	}
}

func TestGround_AlwaysActionPrefixed(t *testing.T) {
	seeds := []string{"", "Seed Bearer", "I am strong", "42 42 42"}
	for _, s := range seeds {
		assert.True(t, strings.HasPrefix(Ground(s), "Action: "), "seed %q", s)
	}
}
