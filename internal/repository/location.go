package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/internal/common"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/utils"
)

type LocationRepository interface {
	Create(ctx context.Context, l *entity.StorageLocation) (*entity.StorageLocation, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.StorageLocation, error)
	FindByName(ctx context.Context, name string) (*entity.StorageLocation, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type locationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewLocationRepository(client *ent.Client, logger *slog.Logger) LocationRepository {
	return &locationRepository{
		client: client,
		logger: logger,
	}
}

func (r *locationRepository) Create(ctx context.Context, l *entity.StorageLocation) (*entity.StorageLocation, error) {
	row, err := r.client.StorageLocation.Create().
		SetName(l.Name).
		SetLocationType(l.LocationType).
		SetNillableCapacity(l.Capacity).
		SetNillableTemperature(l.Temperature).
		SetNillableHumidity(l.Humidity).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create storage location", "name", l.Name, "error", err)
		return nil, err
	}
	return utils.ToStorageLocation(row), nil
}

func (r *locationRepository) List(ctx context.Context, activeOnly bool) ([]*entity.StorageLocation, error) {
	q := r.client.StorageLocation.Query()
	if activeOnly {
		q = q.Where(storagelocation.IsActive(true))
	}
	rows, err := q.Order(storagelocation.ByName()).All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.StorageLocation, len(rows))
	for i, row := range rows {
		result[i] = utils.ToStorageLocation(row)
	}
	return result, nil
}

func (r *locationRepository) FindByName(ctx context.Context, name string) (*entity.StorageLocation, error) {
	row, err := r.client.StorageLocation.Query().
		Where(storagelocation.NameEqualFold(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToStorageLocation(row), nil
}

func (r *locationRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	err := r.client.StorageLocation.UpdateOneID(id).
		SetIsActive(active).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}
