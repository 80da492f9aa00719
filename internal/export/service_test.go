package export

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
)

type stubWineRepo struct {
	repository.WineRepository
	wines []*entity.Wine
	err   error
}

func (s *stubWineRepo) List(context.Context, repository.WineFilter) ([]*entity.Wine, error) {
	return s.wines, s.err
}

func strp(s string) *string { return &s }
func intp(v int) *int       { return &v }

func TestExportCellarXLSX(t *testing.T) {
	price := 450.0
	repo := &stubWineRepo{wines: []*entity.Wine{
		{
			ID:                  uuid.New(),
			Name:                "Barolo Riserva",
			Producer:            "Marchesi di Barolo",
			Vintage:             intp(2018),
			WineType:            "RED",
			Country:             strp("Italien"),
			Region:              strp("Piedmont"),
			GrapeVarieties:      []string{"Nebbiolo"},
			Quantity:            3,
			PurchasePrice:       &price,
			Currency:            "SEK",
			DrinkingWindowStart: intp(2023),
			DrinkingWindowEnd:   intp(2038),
			PeakMaturityYear:    intp(2028),
		},
		{
			ID:       uuid.New(),
			Name:     "Sancerre",
			Producer: "Henri Bourgeois",
			WineType: "WHITE",
			Quantity: 1,
			Currency: "SEK",
		},
	}}

	svc := NewService(repo, nil, nil)
	data, err := svc.ExportCellarXLSX(context.Background(), repository.WineFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Vinkällare")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Namn", rows[0][0])
	assert.Equal(t, "Barolo Riserva", rows[1][0])
	assert.Equal(t, "Marchesi di Barolo", rows[1][1])
	assert.Equal(t, "2018", rows[1][2])
	assert.Equal(t, "Nebbiolo", rows[1][6])
	assert.Equal(t, "450.00 SEK", rows[1][8])
	assert.Equal(t, "2023 - 2038 (topp: 2028)", rows[1][9])
	assert.Equal(t, "Sancerre", rows[2][0])

	// only the named sheet survives, not the excelize default
	assert.Equal(t, []string{"Vinkällare"}, f.GetSheetList())
}

func TestExportCellarXLSX_RepoError(t *testing.T) {
	svc := NewService(&stubWineRepo{err: errors.New("db down")}, nil, nil)
	_, err := svc.ExportCellarXLSX(context.Background(), repository.WineFilter{})
	assert.Error(t, err)
}
