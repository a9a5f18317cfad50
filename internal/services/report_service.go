package services

import (
	"fmt"
	"time"

	"grabngo/internal/models"
	"grabngo/internal/repositories"
)

// ReportService handles the administrative read projections: per-canteen
// order listings and daily sales totals.
type ReportService struct {
	orderRepo repositories.OrderRepository
}

// NewReportService creates a new ReportService.
func NewReportService(orderRepo repositories.OrderRepository) *ReportService {
	return &ReportService{
		orderRepo: orderRepo,
	}
}

// GetOrdersByCanteen retrieves every order containing at least one item of
// the canteen, newest first.
func (s *ReportService) GetOrdersByCanteen(canteenID uint) ([]models.CanteenOrder, error) {
	return s.orderRepo.GetByCanteen(canteenID)
}

// GetSalesTotalByDate sums order totals for a calendar day given as
// YYYY-MM-DD.
func (s *ReportService) GetSalesTotalByDate(date string) (float64, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", date, err)
	}
	return s.orderRepo.SalesTotalByDate(day)
}
