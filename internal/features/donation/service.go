package donation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go-ngo/internal/common/apperr"
	"go-ngo/internal/features/cause"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DonationService interface {
	Create(ctx context.Context, donation *Donation) error
	GetByID(ctx context.Context, id string) (*Donation, error)
	ListAll(ctx context.Context) ([]Donation, error)
	ListByUser(ctx context.Context, userID string) ([]Donation, error)
	Update(ctx context.Context, id string, set bson.M) (*Donation, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*TotalStats, error)
	ByCause(ctx context.Context) ([]CauseBreakdown, error)
	Export(ctx context.Context) ([]byte, error)
	RecentCompleted(ctx context.Context, limit int) ([]Donation, error)
}

type DonationServiceImpl struct {
	Repo         DonationRepository
	CauseService cause.CauseService
}

func NewDonationService(repo DonationRepository, causeService cause.CauseService) DonationService {
	return &DonationServiceImpl{Repo: repo, CauseService: causeService}
}

// FormatChange renders the period-over-period change as a signed percent
// string. An empty previous period reads as +100.0% when anything came in,
// +0.0% otherwise.
func FormatChange(last, prev float64) string {
	var change float64
	switch {
	case prev > 0:
		change = (last - prev) / prev * 100
	case last > 0:
		change = 100
	}

	s := strconv.FormatFloat(change, 'f', 1, 64)
	if strings.HasPrefix(s, "-") {
		return s + "%"
	}
	return "+" + s + "%"
}

func (s *DonationServiceImpl) Create(ctx context.Context, donation *Donation) error {
	if donation.Status == "" {
		donation.Status = StatusPending
	}
	if err := s.Repo.Create(ctx, donation); err != nil {
		return err
	}
	if donation.Status == StatusCompleted && donation.CauseID != nil {
		return s.CauseService.AddToRaised(ctx, donation.CauseID.Hex(), donation.Amount)
	}
	return nil
}

func (s *DonationServiceImpl) GetByID(ctx context.Context, id string) (*Donation, error) {
	donation, err := s.Repo.FindByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Donation not found")
	}
	return donation, err
}

func (s *DonationServiceImpl) ListAll(ctx context.Context) ([]Donation, error) {
	return s.Repo.List(ctx, bson.M{})
}

func (s *DonationServiceImpl) ListByUser(ctx context.Context, userID string) ([]Donation, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, apperr.BadRequest("Invalid user id")
	}
	return s.Repo.List(ctx, bson.M{"user_id": objectID})
}

// Update moves the cause's raised total when the donation completes.
func (s *DonationServiceImpl) Update(ctx context.Context, id string, set bson.M) (*Donation, error) {
	before, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	donation, err := s.Repo.Update(ctx, id, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperr.NotFound("Donation not found")
	}
	if err != nil {
		return nil, err
	}

	completed := before.Status != StatusCompleted && donation.Status == StatusCompleted
	if completed && donation.CauseID != nil {
		if err := s.CauseService.AddToRaised(ctx, donation.CauseID.Hex(), donation.Amount); err != nil {
			return nil, err
		}
	}
	return donation, nil
}

func (s *DonationServiceImpl) Delete(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound("Donation not found")
	}
	return err
}

func (s *DonationServiceImpl) Stats(ctx context.Context) (*TotalStats, error) {
	now := time.Now()
	d30 := now.AddDate(0, 0, -30)
	d60 := now.AddDate(0, 0, -60)
	d120 := now.AddDate(0, 0, -120)

	total, err := s.Repo.SumCompleted(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	last30, err := s.Repo.SumCompleted(ctx, d30, time.Time{})
	if err != nil {
		return nil, err
	}
	prev30, err := s.Repo.SumCompleted(ctx, d60, d30)
	if err != nil {
		return nil, err
	}
	last60, err := s.Repo.SumCompleted(ctx, d60, time.Time{})
	if err != nil {
		return nil, err
	}
	prev60, err := s.Repo.SumCompleted(ctx, d120, d60)
	if err != nil {
		return nil, err
	}

	return &TotalStats{
		TotalAmount: total,
		ThirtyDayStats: WindowStats{
			Change:      FormatChange(last30, prev30),
			Description: "Last 30 days",
		},
		SixtyDayStats: WindowStats{
			Change:      FormatChange(last60, prev60),
			Description: "Last 60 days",
		},
	}, nil
}

// ByCause returns completed totals per cause plus a General Fund bucket
// for donations without one. Percentages are of the completed grand total.
func (s *DonationServiceImpl) ByCause(ctx context.Context) ([]CauseBreakdown, error) {
	total, err := s.Repo.SumCompleted(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	if total <= 0 {
		total = 1
	}

	rows, err := s.Repo.BreakdownByCause(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Percentage = math.Round(rows[i].Amount / total * 100)
	}

	general, err := s.Repo.SumGeneralFund(ctx)
	if err != nil {
		return nil, err
	}
	if general > 0 {
		rows = append(rows, CauseBreakdown{
			Name:       "General Fund",
			Amount:     general,
			Percentage: math.Round(general / total * 100),
		})
	}
	return rows, nil
}

// Export writes every donation to an xlsx sheet with a trailing totals row.
func (s *DonationServiceImpl) Export(ctx context.Context) ([]byte, error) {
	donations, err := s.Repo.List(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	causes, err := s.CauseService.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	causeTitles := make(map[string]string, len(causes))
	for _, c := range causes {
		causeTitles[c.ID.Hex()] = c.Title
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Donations"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Date", "Name", "Email", "Phone", "Amount", "Cause", "Payment ID", "Status"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	var total float64
	for i, d := range donations {
		row := i + 2
		causeRef := d.CustomCause
		if d.CauseID != nil {
			// Stale references keep the raw id rather than dropping the row.
			causeRef = d.CauseID.Hex()
			if title, ok := causeTitles[causeRef]; ok {
				causeRef = title
			}
		}
		values := []any{
			d.CreatedAt.Format("2006-01-02 15:04"),
			d.Name, d.Email, d.Phone, d.Amount, causeRef, d.PaymentID, d.Status,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		if d.Status == StatusCompleted {
			total += d.Amount
		}
	}

	totalRow := len(donations) + 2
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Total (completed)")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), total)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *DonationServiceImpl) RecentCompleted(ctx context.Context, limit int) ([]Donation, error) {
	donations, err := s.Repo.List(ctx, bson.M{"status": StatusCompleted})
	if err != nil {
		return nil, err
	}
	if len(donations) > limit {
		donations = donations[:limit]
	}
	return donations, nil
}
