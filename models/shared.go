package models

// Identity is the caller of a customer-facing endpoint. A guest has no UID.
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Guest       bool   `json:"guest"`
}

// GuestIdentity is substituted for unauthenticated callers when guests are allowed.
func GuestIdentity() Identity {
	return Identity{DisplayName: "Guest", Guest: true}
}

// Location is the result of a pincode or reverse-geocode lookup. Blank fields mean unknown.
type Location struct {
	Line1    string `json:"line1,omitempty"`
	District string `json:"district"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}
