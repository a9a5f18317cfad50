package repositories

import "errors"

// Sentinel errors surfaced by repositories. Services wrap them with context;
// handlers map them to HTTP statuses with errors.Is.
var (
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentExists     = errors.New("student already registered")
	ErrCanteenNotFound   = errors.New("canteen not found")
	ErrStaffNotFound     = errors.New("staff admin not found")
)
