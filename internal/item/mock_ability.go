package item

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CustomItemEffects_Go/internal/domain"
)

// MockAbility is a mock implementation of the Ability interface
type MockAbility struct {
	mock.Mock
}

func (m *MockAbility) OnUse(ctx context.Context, actor, target domain.Actor) error {
	args := m.Called(ctx, actor, target)
	return args.Error(0)
}
