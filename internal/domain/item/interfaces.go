package item

import "context"

// Repository provides persistence for items.
//
// Update and RemoveByID report a missing item with false rather than an
// error; errors are reserved for store failures.
type Repository interface {
	Insert(ctx context.Context, it Item) (int64, error)
	List(ctx context.Context) ([]Item, error)
	FindByID(ctx context.Context, id int64) (*Item, error)
	Update(ctx context.Context, it Item) (bool, error)
	RemoveByID(ctx context.Context, id int64) (bool, error)
}
