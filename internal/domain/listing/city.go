package listing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/casaplex/casaplex/internal/shared/biztime"
)

// City is an operator-managed catalog entry listings reference by ID.
type City struct {
	id        uint
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewCity creates a city catalog entry.
func NewCity(name string) (*City, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("city name is required")
	}
	now := biztime.NowUTC()
	return &City{name: name, createdAt: now, updatedAt: now}, nil
}

// ReconstructCity builds a City from stored state.
func ReconstructCity(id uint, name string, createdAt, updatedAt time.Time) (*City, error) {
	if id == 0 {
		return nil, fmt.Errorf("city ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("city name is required")
	}
	return &City{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}, nil
}

func (c *City) ID() uint             { return c.id }
func (c *City) Name() string         { return c.name }
func (c *City) CreatedAt() time.Time { return c.createdAt }
func (c *City) UpdatedAt() time.Time { return c.updatedAt }

// SetID assigns the database identity after insertion.
func (c *City) SetID(newID uint) error {
	if c.id != 0 {
		return fmt.Errorf("city ID already set")
	}
	c.id = newID
	return nil
}

// Rename updates the city name.
func (c *City) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("city name is required")
	}
	c.name = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

// CityRepository is the persistence port for the city catalog.
type CityRepository interface {
	Create(ctx context.Context, c *City) error
	Update(ctx context.Context, c *City) error
	Delete(ctx context.Context, cityID uint) error
	GetByID(ctx context.Context, cityID uint) (*City, error)
	GetByName(ctx context.Context, name string) (*City, error)
	List(ctx context.Context) ([]*City, error)
}
