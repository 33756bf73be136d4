// File: utils/constants.go
package utils

// Redis key prefixes.
const (
	CartKeyPrefix        = "cart:"
	LastBookingKeyPrefix = "lastBooking:"
	PincodeKeyPrefix     = "lookup:pincode:"
	ReverseKeyPrefix     = "lookup:reverse:"
)

// CartIDHeader carries the anonymous cart id between client and server.
const CartIDHeader = "X-Cart-ID"
