package enemyai

import (
	"testing"

	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsEveryKind(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(string(kind), func(t *testing.T) {
			r := newRig(gamemath.V(0, -20), gamemath.V(16, 40))
			b, err := New(kind, r.deps(), r.ai)
			require.NoError(t, err)
			assert.Equal(t, kind, b.Base().Kind)
			assert.Equal(t, b.Base().MaxHealth, b.Base().Health)
			assert.Equal(t, Handle(3), b.Base().Self)
		})
	}
}

func TestNewRejectsUnknownKind(t *testing.T) {
	r := newRig(gamemath.V(0, -20), gamemath.V(16, 40))
	_, err := New(Kind("dragonfly"), r.deps(), r.ai)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestNewRequiresClockAndBody(t *testing.T) {
	r := newRig(gamemath.V(0, -20), gamemath.V(16, 40))
	deps := r.deps()
	deps.Body = nil
	_, err := New(KindGrunt, deps, r.ai)
	assert.ErrorIs(t, err, ErrMissingDeps)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Boss ")
	require.NoError(t, err)
	assert.Equal(t, KindBoss, k)

	_, err = ParseKind("slime")
	assert.ErrorIs(t, err, ErrUnknownKind)

	assert.True(t, KindMage.Flies())
	assert.False(t, KindGrunt.Flies())
}

func TestOnlyBossHandlesContact(t *testing.T) {
	r := newRig(gamemath.V(0, -20), gamemath.V(16, 40))
	for _, kind := range Kinds {
		b, err := New(kind, r.deps(), r.ai)
		require.NoError(t, err)
		_, ok := b.(ContactHandler)
		assert.Equal(t, kind == KindBoss, ok, kind)
	}
}
