package signals

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	// ErrNotFound reports an acknowledgment against an unknown pickup id.
	ErrNotFound = errors.New("pickup request not found")
	// ErrDuplicateLocation reports a second open request for a location.
	ErrDuplicateLocation = errors.New("pickup already requested for this location")
)

// Store is the external pickup-request store the ingestion adapter reads.
// Fetching ready records is the only blocking operation on the route path.
type Store interface {
	CreatePickup(ctx context.Context, p *PickupRequest) error
	ReadyPickups(ctx context.Context) ([]PickupRequest, error)
	MarkCollected(ctx context.Context, id uint) error
}

// GormStore backs Store with Postgres through gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreatePickup(ctx context.Context, p *PickupRequest) error {
	if p.Status == "" {
		p.Status = StatusReady
	}
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLocation
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateLocation
		}
		return err
	}
	return nil
}

func (s *GormStore) ReadyPickups(ctx context.Context) ([]PickupRequest, error) {
	var out []PickupRequest
	err := s.db.WithContext(ctx).
		Where("status = ?", StatusReady).
		Order("id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) MarkCollected(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Model(&PickupRequest{}).
		Where("id = ? AND status = ?", id, StatusReady).
		Update("status", StatusCollected)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
