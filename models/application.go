package models

// VendorType identifies the booth category. It is fixed for a booking
// session once chosen and drives pricing and the required form fields.
type VendorType string

const (
	VendorTypeRegular VendorType = "regular"
	VendorTypeFood    VendorType = "food"
)

// Valid reports whether v is one of the known vendor types.
func (v VendorType) Valid() bool {
	return v == VendorTypeRegular || v == VendorTypeFood
}

// ApplicationForm is the vendor application filled once per booking session
// and fanned out across every selected date.
type ApplicationForm struct {
	// Common fields.
	FullName              string `json:"fullName"`
	PreferredName         string `json:"preferredName"`
	Pronouns              string `json:"pronouns"`
	BusinessName          string `json:"businessName"`
	Phone                 string `json:"phone"`
	Email                 string `json:"email"`
	Instagram             string `json:"instagram"`
	SocialMediaConsent    string `json:"socialMediaConsent"`
	PhotoConsent          string `json:"photoConsent"`
	NoiseSensitive        string `json:"noiseSensitive"`
	SharingBooth          string `json:"sharingBooth"`
	BoothPartnerInstagram string `json:"boothPartnerInstagram"`
	PriceRange            string `json:"priceRange"`
	AdditionalNotes       string `json:"additionalNotes"`
	PhotoURL              string `json:"photoUrl,omitempty"`

	// Regular vendor specific.
	ProductsSelling string `json:"productsSelling"`
	ElectricityCord string `json:"electricityCord"`

	// Food truck specific.
	CuisineType string `json:"cuisineType"`
	FoodItems   string `json:"foodItems"`
	SetupSize   string `json:"setupSize"`
	Generator   string `json:"generator"`
}
