package services_test

import (
	"testing"
	"time"

	"grabngo/internal/models"
	"grabngo/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportService_GetSalesTotalByDate(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := services.NewReportService(mockOrders)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	mockOrders.On("SalesTotalByDate", day).Return(250.0, nil).Once()

	total, err := service.GetSalesTotalByDate("2026-08-28")
	assert.NoError(t, err)
	assert.InDelta(t, 250.0, total, 0.001)
	mockOrders.AssertExpectations(t)
}

func TestReportService_GetSalesTotalByDate_BadFormatRejected(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := services.NewReportService(mockOrders)

	_, err := service.GetSalesTotalByDate("28-08-2026")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	mockOrders.AssertNotCalled(t, "SalesTotalByDate", mock.Anything)
}

func TestReportService_GetOrdersByCanteen(t *testing.T) {
	mockOrders := new(MockOrderRepository)
	service := services.NewReportService(mockOrders)

	expected := []models.CanteenOrder{{OrderID: 1, StudentName: "Alice", TotalAmount: 40}}
	mockOrders.On("GetByCanteen", uint(1)).Return(expected, nil).Once()

	orders, err := service.GetOrdersByCanteen(1)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
	mockOrders.AssertExpectations(t)
}
