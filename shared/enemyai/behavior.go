package enemyai

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/doomerang-ai/config"
	"github.com/automoto/doomerang-ai/logger"
	"github.com/automoto/doomerang-ai/shared/gamemath"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnknownKind = errors.New("enemyai: unknown enemy kind")
	ErrMissingDeps = errors.New("enemyai: missing dependency")
)

// Behavior is the per-tick contract every variant implements. Update makes
// decisions; FixedUpdate runs once per physics step.
type Behavior interface {
	Base() *Enemy
	Update()
	FixedUpdate()
	Attack()
}

// ContactHandler is implemented by enemies that hurt the player on touch.
type ContactHandler interface {
	OnPlayerContact(player Handle, at gamemath.Vec2)
}

var (
	_ Behavior       = (*Archer)(nil)
	_ Behavior       = (*Mage)(nil)
	_ Behavior       = (*Grunt)(nil)
	_ Behavior       = (*Boss)(nil)
	_ ContactHandler = (*Boss)(nil)
)

// Kinds lists every constructible variant.
var Kinds = []Kind{KindArcher, KindMage, KindGrunt, KindBoss}

// ParseKind maps a level or CLI name to a Kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Flies reports whether the variant ignores gravity.
func (k Kind) Flies() bool {
	return k == KindMage || k == KindBoss
}

// New builds the variant for kind. ai is retained, so later edits to it
// reach the enemy.
func New(kind Kind, deps Deps, ai *config.AIConfig) (Behavior, error) {
	if deps.Host == nil || deps.Host.Clock == nil || deps.Body == nil || ai == nil {
		return nil, fmt.Errorf("%w: host clock, body and config are required", ErrMissingDeps)
	}
	switch kind {
	case KindArcher:
		return NewArcher(deps, ai), nil
	case KindMage:
		return NewMage(deps, ai), nil
	case KindGrunt:
		return NewGrunt(deps, ai), nil
	case KindBoss:
		return NewBoss(deps, ai), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func discardLogger() logrus.FieldLogger {
	return logger.Discard()
}
