package item

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/tasktrack/internal/logging"
	"github.com/ganot/tasktrack/internal/repository"
	"github.com/go-playground/validator/v10"
)

// Service handles item operations.
type Service struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates a new item service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logging.OrDiscard(logger),
	}
}

// CreateRequest defines item creation inputs.
type CreateRequest struct {
	Description string   `validate:"required"`
	Tags        []string `validate:"omitempty,dive,required"`
	Deadline    string
}

// UpdateRequest replaces every field of the item with the given ID.
type UpdateRequest struct {
	ID          int64    `validate:"gt=0"`
	Description string   `validate:"required"`
	Tags        []string `validate:"omitempty,dive,required"`
	Deadline    string
}

// Create stores a new item and returns it with its assigned ID.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	it := Item{
		Description: req.Description,
		Tags:        normalizeTags(req.Tags),
		Deadline:    req.Deadline,
	}

	id, err := s.repo.Insert(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}
	it.ID = id

	s.logger.Debug("item created", "id", id)
	return &it, nil
}

// List returns every stored item.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return items, nil
}

// Get fetches an item by ID.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return it, nil
}

// Update replaces the stored item matching req.ID.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Item, error) {
	if req.ID <= 0 {
		return nil, ErrItemNotFound
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	it := Item{
		ID:          req.ID,
		Description: req.Description,
		Tags:        normalizeTags(req.Tags),
		Deadline:    req.Deadline,
	}

	updated, err := s.repo.Update(ctx, it)
	if err != nil {
		return nil, fmt.Errorf("updating item: %w", err)
	}
	if !updated {
		return nil, ErrItemNotFound
	}

	s.logger.Debug("item updated", "id", it.ID)
	return &it, nil
}

// Delete removes the item with the given ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.RemoveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if !removed {
		return ErrItemNotFound
	}

	s.logger.Debug("item deleted", "id", id)
	return nil
}

func normalizeTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
