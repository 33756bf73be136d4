package booking

import (
	"regexp"
	"strings"

	"sevasetu/models"
)

// Time windows offered at checkout.
var TimeSlots = []string{
	"9 AM - 12 PM",
	"12 PM - 3 PM",
	"3 PM - 6 PM",
}

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// CheckoutRequest carries the contact, address and schedule fields of the checkout form.
type CheckoutRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Address  models.Address `json:"address"`
	Date     string         `json:"date"`
	TimeSlot string         `json:"timeSlot"`
}

func (r *CheckoutRequest) trim() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Address.Line1 = strings.TrimSpace(r.Address.Line1)
	r.Address.District = strings.TrimSpace(r.Address.District)
	r.Address.State = strings.TrimSpace(r.Address.State)
	r.Address.Pincode = strings.TrimSpace(r.Address.Pincode)
	r.Date = strings.TrimSpace(r.Date)
	r.TimeSlot = strings.TrimSpace(r.TimeSlot)
}

// Validate checks the request fail-fast and returns the first broken rule.
func (r *CheckoutRequest) Validate() error {
	if !phonePattern.MatchString(r.Phone) {
		return newValidationError("phone", "Enter a valid 10-digit phone number")
	}
	if r.Address.Pincode == "" {
		return newValidationError("pincode", "Please fill all required fields")
	}
	if !pincodePattern.MatchString(r.Address.Pincode) {
		return newValidationError("pincode", "Enter a valid 6-digit pincode")
	}
	if r.Address.Line1 == "" {
		return newValidationError("address", "Please fill all required fields")
	}
	if r.Date == "" {
		return newValidationError("date", "Please fill all required fields")
	}
	if r.TimeSlot == "" {
		return newValidationError("timeSlot", "Please fill all required fields")
	}
	if !validTimeSlot(r.TimeSlot) {
		return newValidationError("timeSlot", "Choose one of the available time slots")
	}
	return nil
}

func validTimeSlot(slot string) bool {
	for _, s := range TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
