package services

import "errors"

// Sentinel errors let controllers map failures onto the HTTP surface:
// validation 400, ownership 403, missing resources 404, conflicts 409.
var (
	ErrNotFound    = errors.New("resource not found")
	ErrNotOwner    = errors.New("resource belongs to another account")
	ErrEmptyCart   = errors.New("cart is empty")
	ErrOutOfStock  = errors.New("insufficient stock")
	ErrSlotTaken   = errors.New("time slot already booked")
	ErrBadTime     = errors.New("invalid date or time format")
	ErrBadQuantity = errors.New("quantity must be at least 1")
)
