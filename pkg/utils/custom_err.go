package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrInvalidInput    = errors.New("invalid input")

	ErrRouteNotFound = errors.New("route not found")
	ErrPlaceNotFound = errors.New("place not found")
	ErrCityNotFound  = errors.New("city not found")

	// Request validation failures surfaced to the caller as 400s.
	ErrStartDateInPast  = errors.New("start date is before today")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrTripTooLong      = errors.New("trip duration exceeds 30 days")
)
