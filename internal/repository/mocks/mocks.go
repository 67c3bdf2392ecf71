package mocks

import (
	"context"

	"github.com/ganot/tasktrack/internal/domain/item"
	"github.com/stretchr/testify/mock"
)

// ItemRepository is a mock for item.Repository.
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) Insert(ctx context.Context, it item.Item) (int64, error) {
	args := m.Called(ctx, it)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]item.Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) FindByID(ctx context.Context, id int64) (*item.Item, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*item.Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ItemRepository) Update(ctx context.Context, it item.Item) (bool, error) {
	args := m.Called(ctx, it)
	return args.Bool(0), args.Error(1)
}

func (m *ItemRepository) RemoveByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// SequenceAllocator is a mock for repository.SequenceAllocator.
type SequenceAllocator struct {
	mock.Mock
}

func (m *SequenceAllocator) Next(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *SequenceAllocator) Current(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}
