package booking

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"wintermarket/models"
)

// SessionBuilder turns a selection, a vendor type and a filled application
// form into the reservation records handed to checkout. The form is filled
// once and fanned out: every record shares identical notes content, only
// the eventDate differs per record.
type SessionBuilder struct{}

// Build validates the inputs and produces one ReservationRecord per
// selected date, sorted chronologically ascending. Display order stays the
// visitor's click order; submission order is calendar order.
func (b *SessionBuilder) Build(sel *models.Selection, vendorType models.VendorType, form models.ApplicationForm) (*models.BookingSession, error) {
	if sel == nil || sel.IsEmpty() {
		return nil, NewValidationError("dates", "no dates selected")
	}
	if !vendorType.Valid() {
		return nil, NewValidationError("vendorType", "vendor type must be \"regular\" or \"food\"")
	}
	if err := validateForm(vendorType, form); err != nil {
		return nil, err
	}

	dates := append([]string(nil), sel.Dates...)
	sort.Strings(dates)

	notes := models.ReservationNotes{
		VendorType:            vendorType,
		PreferredName:         form.PreferredName,
		Pronouns:              form.Pronouns,
		Instagram:             form.Instagram,
		ProductsSelling:       form.ProductsSelling,
		CuisineType:           form.CuisineType,
		FoodItems:             form.FoodItems,
		PriceRange:            form.PriceRange,
		SocialMediaConsent:    form.SocialMediaConsent,
		PhotoConsent:          form.PhotoConsent,
		NoiseSensitive:        form.NoiseSensitive,
		SharingBooth:          form.SharingBooth,
		BoothPartnerInstagram: form.BoothPartnerInstagram,
		ElectricityCord:       form.ElectricityCord,
		Generator:             form.Generator,
		SetupSize:             form.SetupSize,
		AdditionalNotes:       form.AdditionalNotes,
		PhotoURL:              form.PhotoURL,
	}
	if len(dates) > 1 {
		notes.SelectedDates = dates
		notes.MultiBooking = true
	}
	notesJSON, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reservation notes: %w", err)
	}

	records := make([]models.ReservationRecord, 0, len(dates))
	for _, date := range dates {
		records = append(records, models.ReservationRecord{
			EventDate:    date,
			VendorName:   form.FullName,
			VendorEmail:  form.Email,
			BusinessName: form.BusinessName,
			Phone:        form.Phone,
			Notes:        string(notesJSON),
		})
	}

	return &models.BookingSession{
		Records:    records,
		VendorType: vendorType,
		TotalPrice: TotalPrice(vendorType, len(dates)),
	}, nil
}

func validateForm(vendorType models.VendorType, form models.ApplicationForm) error {
	required := []struct {
		field, value string
	}{
		{"fullName", form.FullName},
		{"businessName", form.BusinessName},
		{"phone", form.Phone},
		{"email", form.Email},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return NewValidationError(r.field, "required")
		}
	}

	switch vendorType {
	case models.VendorTypeRegular:
		if strings.TrimSpace(form.ProductsSelling) == "" {
			return NewValidationError("productsSelling", "required for regular vendors")
		}
	case models.VendorTypeFood:
		if strings.TrimSpace(form.CuisineType) == "" {
			return NewValidationError("cuisineType", "required for food trucks")
		}
		if strings.TrimSpace(form.FoodItems) == "" {
			return NewValidationError("foodItems", "required for food trucks")
		}
	}
	return nil
}
