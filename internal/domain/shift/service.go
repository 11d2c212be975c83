package shift

import "context"

// ShiftService defines business logic for shift template management.
type ShiftService interface {
	// Create creates a shift template, computing the cached night-shift flag
	Create(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)

	// Get retrieves a single shift template
	Get(ctx context.Context, id string) (ShiftResponse, error)

	// List retrieves all shift templates
	List(ctx context.Context) ([]ShiftResponse, error)

	// Update applies partial edits, refreshing the cached night-shift flag
	Update(ctx context.Context, req UpdateShiftRequest) (ShiftResponse, error)

	// Delete removes a shift template; deleting the active shift clears the
	// active-shift pointer
	Delete(ctx context.Context, id string) error

	// Activate marks the shift as the globally active one
	Activate(ctx context.Context, id string) error
}
