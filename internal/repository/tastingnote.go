package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/utils"
)

type TastingNoteRepository interface {
	Create(ctx context.Context, n *entity.TastingNote) (*entity.TastingNote, error)
	ListByWine(ctx context.Context, wineID uuid.UUID) ([]*entity.TastingNote, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type tastingNoteRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTastingNoteRepository(client *ent.Client, logger *slog.Logger) TastingNoteRepository {
	return &tastingNoteRepository{
		client: client,
		logger: logger,
	}
}

func (r *tastingNoteRepository) Create(ctx context.Context, n *entity.TastingNote) (*entity.TastingNote, error) {
	row, err := r.client.TastingNote.Create().
		SetWineID(n.WineID).
		SetTastingDate(n.TastingDate).
		SetNillableLocation(n.Location).
		SetNillableOccasion(n.Occasion).
		SetNillableColor(n.Color).
		SetNillableAromas(n.Aromas).
		SetNillablePalate(n.Palate).
		SetNillableScore(n.Score).
		SetNillableNotes(n.Notes).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create tasting note", "wine_id", n.WineID, "error", err)
		return nil, err
	}
	return utils.ToTastingNote(row), nil
}

func (r *tastingNoteRepository) ListByWine(ctx context.Context, wineID uuid.UUID) ([]*entity.TastingNote, error) {
	rows, err := r.client.TastingNote.Query().
		Where(tastingnote.WineID(wineID)).
		Order(tastingnote.ByTastingDate(entsql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.TastingNote, len(rows))
	for i, row := range rows {
		result[i] = utils.ToTastingNote(row)
	}
	return result, nil
}

func (r *tastingNoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.TastingNote.DeleteOneID(id).Exec(ctx)
}
