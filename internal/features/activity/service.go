package activity

import (
	"context"
	"fmt"
	"time"

	"go-ngo/internal/features/donation"
)

// Activity is a dashboard feed item rendered from recent platform events.
type Activity struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Time        time.Time `json:"time"`
	Type        string    `json:"type"`
}

type ActivityService interface {
	Recent(ctx context.Context) ([]Activity, error)
}

type ActivityServiceImpl struct {
	DonationService donation.DonationService
}

func NewActivityService(donationService donation.DonationService) ActivityService {
	return &ActivityServiceImpl{DonationService: donationService}
}

// Recent renders the last five completed donations as feed items. Other
// sources (volunteer signups, blog posts) can be merged in later.
func (s *ActivityServiceImpl) Recent(ctx context.Context) ([]Activity, error) {
	donations, err := s.DonationService.RecentCompleted(ctx, 5)
	if err != nil {
		return nil, err
	}

	activities := make([]Activity, 0, len(donations))
	for _, d := range donations {
		description := fmt.Sprintf("₹%.0f donated by %s", d.Amount, d.Name)
		if d.CustomCause != "" {
			description += " for " + d.CustomCause
		}
		activities = append(activities, Activity{
			Title:       "New Donation Received",
			Description: description,
			Time:        d.CreatedAt,
			Type:        "donation",
		})
	}
	return activities, nil
}
