package shift

import "context"

// ShiftRepository defines data access methods for shift templates.
type ShiftRepository interface {
	// Create creates a new shift template
	Create(ctx context.Context, shift Shift) (Shift, error)

	// GetByID retrieves a shift by ID
	GetByID(ctx context.Context, id string) (Shift, error)

	// List retrieves all shift templates
	List(ctx context.Context) ([]Shift, error)

	// Update updates an existing shift template
	Update(ctx context.Context, shift Shift) error

	// Delete removes a shift template
	Delete(ctx context.Context, id string) error
}
