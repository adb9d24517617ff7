package primary

import (
	"context"

	"github.com/example/htscan/internal/models"
)

// MasterService persists and loads the check master that seeds
// delivery-check sessions.
type MasterService interface {
	// SaveMaster persists a check master built on the device.
	SaveMaster(ctx context.Context, items []models.MasterItem) error

	// LoadMaster returns the stored check master. An absent or unreadable
	// master loads as an empty list.
	LoadMaster(ctx context.Context) (*models.MasterList, error)
}
