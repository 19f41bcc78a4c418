package inventory

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/mamadbah2/avinventory/internal/domain/models"
)

var (
	// ErrEmpty indicates the inventory holds no records.
	ErrEmpty = errors.New("inventory is empty")
	// ErrInvalidPosition indicates a 1-based position outside [1, Len()].
	ErrInvalidPosition = errors.New("invalid position")
	// ErrNilDevice indicates an attempt to add a nil record.
	ErrNilDevice = errors.New("device must not be nil")
)

// Inventory is the ordered, in-memory collection of records for one session.
// Positions are 1-based and stay contiguous after removals. It is not safe
// for concurrent use.
type Inventory struct {
	devices []models.Device
	logger  *zap.Logger
}

// New creates an empty inventory.
func New(logger *zap.Logger) *Inventory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Inventory{logger: logger}
}

// Len returns the number of records held.
func (i *Inventory) Len() int {
	return len(i.devices)
}

// Add appends a record. The inventory takes ownership of it.
func (i *Inventory) Add(device models.Device) error {
	if device == nil {
		return ErrNilDevice
	}
	i.devices = append(i.devices, device)
	i.logger.Debug("device added",
		zap.String("kind", string(device.Kind())),
		zap.String("brand", device.Brand()),
		zap.String("model", device.Model()),
		zap.Int("position", len(i.devices)))
	return nil
}

// List returns the records paired with their 1-based positions in insertion
// order. The sequence may be ranged over repeatedly; each pass starts from
// the first record. ErrEmpty is returned when there is nothing to list.
func (i *Inventory) List() (iter.Seq2[int, models.Device], error) {
	if len(i.devices) == 0 {
		return nil, ErrEmpty
	}
	return func(yield func(int, models.Device) bool) {
		for idx, d := range i.devices {
			if !yield(idx+1, d) {
				return
			}
		}
	}, nil
}

// At returns the record at a 1-based position.
func (i *Inventory) At(position int) (models.Device, error) {
	if err := i.checkPosition(position); err != nil {
		return nil, err
	}
	return i.devices[position-1], nil
}

// RemoveAt deletes the record at a 1-based position and shifts the following
// records down by one.
func (i *Inventory) RemoveAt(position int) (models.Device, error) {
	if err := i.checkPosition(position); err != nil {
		i.logger.Debug("remove rejected", zap.Int("position", position), zap.Error(err))
		return nil, err
	}

	removed := i.devices[position-1]
	i.devices = slices.Delete(i.devices, position-1, position)
	i.logger.Debug("device removed",
		zap.String("kind", string(removed.Kind())),
		zap.Int("position", position),
		zap.Int("remaining", len(i.devices)))
	return removed, nil
}

// Clear drops every record and reports how many were released.
func (i *Inventory) Clear() int {
	count := len(i.devices)
	clear(i.devices)
	i.devices = nil
	i.logger.Debug("inventory cleared", zap.Int("released", count))
	return count
}

func (i *Inventory) checkPosition(position int) error {
	if len(i.devices) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPosition, ErrEmpty)
	}
	if position < 1 || position > len(i.devices) {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPosition, position, len(i.devices))
	}
	return nil
}
