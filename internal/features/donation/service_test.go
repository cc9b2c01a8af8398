package donation

import (
	"bytes"
	"context"
	"testing"
	"time"

	"go-ngo/internal/features/cause"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// stubDonationRepo serves canned aggregation results and records updates.
type stubDonationRepo struct {
	donations map[string]*Donation

	sumTotal    float64
	sumByWindow map[[2]int64]float64
	breakdown   []CauseBreakdown
	generalFund float64
}

func newStubDonationRepo() *stubDonationRepo {
	return &stubDonationRepo{donations: map[string]*Donation{}, sumByWindow: map[[2]int64]float64{}}
}

func (r *stubDonationRepo) Create(ctx context.Context, donation *Donation) error {
	if donation.ID.IsZero() {
		donation.ID = primitive.NewObjectID()
	}
	clone := *donation
	r.donations[donation.ID.Hex()] = &clone
	return nil
}

func (r *stubDonationRepo) FindByID(ctx context.Context, id string) (*Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	clone := *d
	return &clone, nil
}

func (r *stubDonationRepo) List(ctx context.Context, filter bson.M) ([]Donation, error) {
	var out []Donation
	for _, d := range r.donations {
		if status, ok := filter["status"].(string); ok && d.Status != status {
			continue
		}
		out = append(out, *d)
	}
	return out, nil
}

func (r *stubDonationRepo) Update(ctx context.Context, id string, set bson.M) (*Donation, error) {
	d, ok := r.donations[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if status, ok := set["status"].(string); ok {
		d.Status = status
	}
	if amount, ok := set["amount"].(float64); ok {
		d.Amount = amount
	}
	clone := *d
	return &clone, nil
}

func (r *stubDonationRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.donations[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.donations, id)
	return nil
}

func (r *stubDonationRepo) SumCompleted(ctx context.Context, from, to time.Time) (float64, error) {
	if from.IsZero() && to.IsZero() {
		return r.sumTotal, nil
	}
	return r.sumByWindow[[2]int64{from.Unix(), to.Unix()}], nil
}

func (r *stubDonationRepo) BreakdownByCause(ctx context.Context) ([]CauseBreakdown, error) {
	out := make([]CauseBreakdown, len(r.breakdown))
	copy(out, r.breakdown)
	return out, nil
}

func (r *stubDonationRepo) SumGeneralFund(ctx context.Context) (float64, error) {
	return r.generalFund, nil
}

// recordingCauseService records AddToRaised calls, serves a fixed cause
// list and ignores everything else.
type recordingCauseService struct {
	raised map[string]float64
	causes []cause.Cause
}

func newRecordingCauseService() *recordingCauseService {
	return &recordingCauseService{raised: map[string]float64{}}
}

func (s *recordingCauseService) Create(ctx context.Context, c *cause.Cause) error { return nil }
func (s *recordingCauseService) GetBySlug(ctx context.Context, slug string) (*cause.Cause, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *recordingCauseService) ListAll(ctx context.Context) ([]cause.Cause, error) {
	return s.causes, nil
}
func (s *recordingCauseService) ListActive(ctx context.Context) ([]cause.Cause, error) { return nil, nil }
func (s *recordingCauseService) ListByCategory(ctx context.Context, category string) ([]cause.Cause, error) {
	return nil, nil
}
func (s *recordingCauseService) Update(ctx context.Context, id string, set bson.M) (*cause.Cause, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *recordingCauseService) SetStatus(ctx context.Context, id string, active bool) (*cause.Cause, error) {
	return nil, mongo.ErrNoDocuments
}
func (s *recordingCauseService) AddToRaised(ctx context.Context, id string, amount float64) error {
	s.raised[id] += amount
	return nil
}
func (s *recordingCauseService) Delete(ctx context.Context, id string) error { return nil }
func (s *recordingCauseService) DeactivateEnded(ctx context.Context) (int64, error) {
	return 0, nil
}

func TestFormatChange(t *testing.T) {
	cases := []struct {
		last, prev float64
		want       string
	}{
		{150, 100, "+50.0%"},
		{50, 100, "-50.0%"},
		{100, 100, "+0.0%"},
		{80, 0, "+100.0%"},
		{0, 0, "+0.0%"},
		{0, 200, "-100.0%"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatChange(tc.last, tc.prev), "last=%v prev=%v", tc.last, tc.prev)
	}
}

func TestCreateDefaultsToPending(t *testing.T) {
	repo := newStubDonationRepo()
	causes := newRecordingCauseService()
	svc := NewDonationService(repo, causes)

	d := &Donation{Name: "Ravi", Amount: 500}
	require.NoError(t, svc.Create(context.Background(), d))
	assert.Equal(t, StatusPending, d.Status)
	assert.Empty(t, causes.raised)
}

func TestCreateCompletedRaisesCause(t *testing.T) {
	repo := newStubDonationRepo()
	causes := newRecordingCauseService()
	svc := NewDonationService(repo, causes)

	causeID := primitive.NewObjectID()
	d := &Donation{Name: "Meera", Amount: 1200, Status: StatusCompleted, CauseID: &causeID}
	require.NoError(t, svc.Create(context.Background(), d))
	assert.Equal(t, 1200.0, causes.raised[causeID.Hex()])
}

func TestUpdateRaisesCauseOnCompletion(t *testing.T) {
	repo := newStubDonationRepo()
	causes := newRecordingCauseService()
	svc := NewDonationService(repo, causes)

	causeID := primitive.NewObjectID()
	d := &Donation{Name: "Arun", Amount: 750, CauseID: &causeID}
	require.NoError(t, svc.Create(context.Background(), d))

	_, err := svc.Update(context.Background(), d.ID.Hex(), bson.M{"status": StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 750.0, causes.raised[causeID.Hex()])

	// A second non-transition update must not double count.
	_, err = svc.Update(context.Background(), d.ID.Hex(), bson.M{"status": StatusCompleted})
	require.NoError(t, err)
	assert.Equal(t, 750.0, causes.raised[causeID.Hex()])
}

func TestByCausePercentages(t *testing.T) {
	repo := newStubDonationRepo()
	repo.sumTotal = 1000
	repo.breakdown = []CauseBreakdown{
		{Name: "Clean Water", Amount: 600},
		{Name: "Education", Amount: 250},
	}
	repo.generalFund = 150

	svc := NewDonationService(repo, newRecordingCauseService())

	rows, err := svc.ByCause(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 60.0, rows[0].Percentage)
	assert.Equal(t, 25.0, rows[1].Percentage)
	assert.Equal(t, "General Fund", rows[2].Name)
	assert.Equal(t, 150.0, rows[2].Amount)
	assert.Equal(t, 15.0, rows[2].Percentage)
}

func TestByCauseEmptyTotal(t *testing.T) {
	repo := newStubDonationRepo()
	svc := NewDonationService(repo, newRecordingCauseService())

	rows, err := svc.ByCause(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStatsWindows(t *testing.T) {
	repo := newStubDonationRepo()
	repo.sumTotal = 5000

	svc := NewDonationService(repo, newRecordingCauseService())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5000.0, stats.TotalAmount)
	assert.Equal(t, "Last 30 days", stats.ThirtyDayStats.Description)
	assert.Equal(t, "Last 60 days", stats.SixtyDayStats.Description)
	// No windowed activity at all reads as a flat +0.0%.
	assert.Equal(t, "+0.0%", stats.ThirtyDayStats.Change)
	assert.Equal(t, "+0.0%", stats.SixtyDayStats.Change)
}

func TestExportContainsCompletedTotal(t *testing.T) {
	repo := newStubDonationRepo()
	causes := newRecordingCauseService()
	svc := NewDonationService(repo, causes)

	require.NoError(t, svc.Create(context.Background(), &Donation{Name: "A", Amount: 100, Status: StatusCompleted}))
	require.NoError(t, svc.Create(context.Background(), &Donation{Name: "B", Amount: 900, Status: StatusPending}))

	data, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx files are zip archives.
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}

func TestExportResolvesCauseTitles(t *testing.T) {
	repo := newStubDonationRepo()
	causes := newRecordingCauseService()

	causeID := primitive.NewObjectID()
	causes.causes = []cause.Cause{{ID: causeID, Title: "Clean Water"}}
	svc := NewDonationService(repo, causes)

	require.NoError(t, svc.Create(context.Background(), &Donation{
		Name: "Meera", Amount: 500, CauseID: &causeID,
	}))
	require.NoError(t, svc.Create(context.Background(), &Donation{
		Name: "Ravi", Amount: 300, CustomCause: "Temple Fund",
	}))

	data, err := svc.Export(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Donations")
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(rows), 3)

	var causeRefs []string
	for _, row := range rows[1:3] {
		require.GreaterOrEqual(t, len(row), 6)
		causeRefs = append(causeRefs, row[5])
	}
	// The report shows names, never raw ids.
	assert.ElementsMatch(t, []string{"Clean Water", "Temple Fund"}, causeRefs)
	assert.NotContains(t, causeRefs, causeID.Hex())
}
