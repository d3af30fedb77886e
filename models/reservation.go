package models

// ReservationNotes is the typed contents of a reservation's notes blob.
// It is serialized to JSON and carried verbatim into the notes column of
// the tracking sheet, so key names match the form contract exactly.
type ReservationNotes struct {
	VendorType            VendorType `json:"vendorType"`
	PreferredName         string     `json:"preferredName"`
	Pronouns              string     `json:"pronouns"`
	Instagram             string     `json:"instagram"`
	ProductsSelling       string     `json:"productsSelling"`
	CuisineType           string     `json:"cuisineType"`
	FoodItems             string     `json:"foodItems"`
	PriceRange            string     `json:"priceRange"`
	SocialMediaConsent    string     `json:"socialMediaConsent"`
	PhotoConsent          string     `json:"photoConsent"`
	NoiseSensitive        string     `json:"noiseSensitive"`
	SharingBooth          string     `json:"sharingBooth"`
	BoothPartnerInstagram string     `json:"boothPartnerInstagram"`
	ElectricityCord       string     `json:"electricityCord"`
	Generator             string     `json:"generator"`
	SetupSize             string     `json:"setupSize"`
	AdditionalNotes       string     `json:"additionalNotes"`
	PhotoURL              string     `json:"photoUrl,omitempty"`
	SelectedDates         []string   `json:"selectedDates,omitempty"`
	MultiBooking          bool       `json:"multiBooking,omitempty"`
}

// ReservationRecord is the per-date unit handed to checkout: one record per
// selected date, all sharing identical notes content except EventDate.
type ReservationRecord struct {
	EventDate    string `json:"eventDate"`
	VendorName   string `json:"vendor_name"`
	VendorEmail  string `json:"vendor_email"`
	BusinessName string `json:"business_name"`
	Phone        string `json:"phone"`
	Notes        string `json:"notes"` // JSON-encoded ReservationNotes
}

// BookingSession is the result of building a booking session from a
// selection, a vendor type and a filled application form.
type BookingSession struct {
	Records    []ReservationRecord `json:"records"`
	VendorType VendorType          `json:"vendorType"`
	TotalPrice int                 `json:"totalPrice"` // integer USD
}

// CheckoutSession is the handoff returned to the browser after a
// successful reservation: redirect target plus the Stripe session id.
type CheckoutSession struct {
	CheckoutURL string `json:"checkout_url"`
	SessionID   string `json:"session_id"`
}
