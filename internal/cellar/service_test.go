package cellar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahlen/vinkallaren/constants"
	"github.com/sahlen/vinkallaren/gen/ent"
	"github.com/sahlen/vinkallaren/internal/analysis"
	"github.com/sahlen/vinkallaren/internal/entity"
	"github.com/sahlen/vinkallaren/internal/repository"
	"github.com/sahlen/vinkallaren/internal/scanner"
)

type fixedClock struct{ year int }

func (c fixedClock) Now() time.Time {
	return time.Date(c.year, time.June, 1, 12, 0, 0, 0, time.UTC)
}

type memWineRepo struct {
	repository.WineRepository
	byID map[uuid.UUID]*entity.Wine
}

func newMemWineRepo() *memWineRepo {
	return &memWineRepo{byID: make(map[uuid.UUID]*entity.Wine)}
}

func (m *memWineRepo) Create(_ context.Context, w *entity.Wine) (*entity.Wine, error) {
	cp := *w
	cp.ID = uuid.New()
	if cp.Quantity == 0 {
		cp.Quantity = 1
	}
	m.byID[cp.ID] = &cp
	return &cp, nil
}

func (m *memWineRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Wine, error) {
	if w, ok := m.byID[id]; ok {
		return w, nil
	}
	return nil, errors.New("not found")
}

func (m *memWineRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) (*entity.Wine, error) {
	w, ok := m.byID[id]
	if !ok {
		return nil, errors.New("not found")
	}
	if w.Quantity+delta < 0 {
		return nil, errors.New("would go negative")
	}
	w.Quantity += delta
	return w, nil
}

type memNoteRepo struct {
	repository.TastingNoteRepository
	created []*entity.TastingNote
}

func (m *memNoteRepo) Create(_ context.Context, n *entity.TastingNote) (*entity.TastingNote, error) {
	cp := *n
	cp.ID = uuid.New()
	m.created = append(m.created, &cp)
	return &cp, nil
}

type memJobRepo struct {
	repository.ScanJobRepository
	linkedJob  uuid.UUID
	linkedWine uuid.UUID
}

func (m *memJobRepo) LinkWine(_ context.Context, jobID, wineID uuid.UUID) error {
	m.linkedJob = jobID
	m.linkedWine = wineID
	return nil
}

func (m *memJobRepo) GetByID(context.Context, uuid.UUID) (*ent.ScanJob, error) {
	return nil, errors.New("not implemented")
}

func newTestService(wines *memWineRepo, notes *memNoteRepo, jobs *memJobRepo) *Service {
	est := analysis.NewEstimator(fixedClock{year: 2026})
	return NewService(wines, notes, nil, jobs, est, nil)
}

func strp(s string) *string { return &s }
func intp(v int) *int       { return &v }

func TestCreateWine_EstimatesWindowAndPairings(t *testing.T) {
	wines := newMemWineRepo()
	svc := newTestService(wines, &memNoteRepo{}, &memJobRepo{})

	created, err := svc.CreateWine(context.Background(), &entity.Wine{
		Name:           "Barolo Riserva",
		Producer:       "Marchesi di Barolo",
		WineType:       "RED",
		Vintage:        intp(2018),
		GrapeVarieties: []string{"Nebbiolo"},
	})
	require.NoError(t, err)

	// Nebbiolo: drinkable +7, peak +15, end +25.
	require.NotNil(t, created.DrinkingWindowStart)
	assert.Equal(t, 2025, *created.DrinkingWindowStart)
	require.NotNil(t, created.PeakMaturityYear)
	assert.Equal(t, 2033, *created.PeakMaturityYear)
	require.NotNil(t, created.DrinkingWindowEnd)
	assert.Equal(t, 2043, *created.DrinkingWindowEnd)
	assert.NotEmpty(t, created.FoodPairings)
	assert.NotNil(t, created.TastingSummary)
}

func TestCreateWine_KeepsCallerWindow(t *testing.T) {
	wines := newMemWineRepo()
	svc := newTestService(wines, &memNoteRepo{}, &memJobRepo{})

	created, err := svc.CreateWine(context.Background(), &entity.Wine{
		Name:                "Sancerre",
		Producer:            "Henri Bourgeois",
		WineType:            "WHITE",
		DrinkingWindowStart: intp(2025),
		DrinkingWindowEnd:   intp(2027),
	})
	require.NoError(t, err)
	assert.Equal(t, 2025, *created.DrinkingWindowStart)
	assert.Equal(t, 2027, *created.DrinkingWindowEnd)
}

func TestCreateWine_CanonicalizesType(t *testing.T) {
	wines := newMemWineRepo()
	svc := newTestService(wines, &memNoteRepo{}, &memJobRepo{})

	created, err := svc.CreateWine(context.Background(), &entity.Wine{
		Name:     "Some Wine Name",
		Producer: "Some Producer",
		WineType: "rött vin",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.Red), created.WineType)

	unknown, err := svc.CreateWine(context.Background(), &entity.Wine{
		Name:     "Mystery Bottle",
		Producer: "Unknown Cellar",
		WineType: "glögg",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.Unknown), unknown.WineType)
}

func TestCreateWine_RequiresNameAndProducer(t *testing.T) {
	svc := newTestService(newMemWineRepo(), &memNoteRepo{}, &memJobRepo{})
	_, err := svc.CreateWine(context.Background(), &entity.Wine{Name: "Only Name"})
	assert.Error(t, err)
}

func TestCreateFromScan(t *testing.T) {
	wines := newMemWineRepo()
	jobs := &memJobRepo{}
	svc := newTestService(wines, &memNoteRepo{}, jobs)
	jobID := uuid.New()

	wt := constants.Red
	created, err := svc.CreateFromScan(context.Background(), jobID, scanner.ExtractedWineData{
		Name:     strp("Chateau Margaux"),
		Vintage:  intp(2015),
		WineType: &wt,
		Country:  strp("Frankrike"),
	})
	require.NoError(t, err)

	// Producer falls back to the name when the label gave none.
	assert.Equal(t, "Chateau Margaux", created.Producer)
	assert.Equal(t, 1, created.Quantity)
	assert.Equal(t, jobID, jobs.linkedJob)
	assert.Equal(t, created.ID, jobs.linkedWine)
	require.NotNil(t, created.DrinkingWindowStart)
}

func TestCreateFromScan_EmptyDataFails(t *testing.T) {
	svc := newTestService(newMemWineRepo(), &memNoteRepo{}, &memJobRepo{})
	_, err := svc.CreateFromScan(context.Background(), uuid.New(), scanner.ExtractedWineData{})
	assert.Error(t, err)
}

func TestConsumeBottle(t *testing.T) {
	wines := newMemWineRepo()
	notes := &memNoteRepo{}
	svc := newTestService(wines, notes, &memJobRepo{})

	created, err := svc.CreateWine(context.Background(), &entity.Wine{
		Name: "Barolo Riserva", Producer: "Marchesi", WineType: "RED", Quantity: 2,
	})
	require.NoError(t, err)

	w, err := svc.ConsumeBottle(context.Background(), created.ID, &entity.TastingNote{
		TastingDate: time.Now(),
		Notes:       strp("Fortfarande ungt"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, w.Quantity)
	require.Len(t, notes.created, 1)
	assert.Equal(t, created.ID, notes.created[0].WineID)
}

func TestAddBottles_RejectsNonPositive(t *testing.T) {
	svc := newTestService(newMemWineRepo(), &memNoteRepo{}, &memJobRepo{})
	_, err := svc.AddBottles(context.Background(), uuid.New(), 0)
	assert.Error(t, err)
}

func TestAddTastingNote_RequiresExistingWine(t *testing.T) {
	wines := newMemWineRepo()
	svc := newTestService(wines, &memNoteRepo{}, &memJobRepo{})

	_, err := svc.AddTastingNote(context.Background(), &entity.TastingNote{
		WineID:      uuid.New(),
		TastingDate: time.Now(),
	})
	assert.Error(t, err)

	_, err = svc.AddTastingNote(context.Background(), &entity.TastingNote{})
	assert.Error(t, err)
}

func TestStatus(t *testing.T) {
	svc := newTestService(newMemWineRepo(), &memNoteRepo{}, &memJobRepo{})

	w := &entity.Wine{DrinkingWindowStart: intp(2020), DrinkingWindowEnd: intp(2030)}
	assert.Equal(t, constants.StatusReady, svc.Status(w))

	late := &entity.Wine{DrinkingWindowStart: intp(2010), DrinkingWindowEnd: intp(2015)}
	assert.Equal(t, constants.StatusOverdue, svc.Status(late))
}
