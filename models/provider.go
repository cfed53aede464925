package models

// LatLng is a (latitude, longitude) pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Review struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"` // 1..5
	Comment  string `json:"comment"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// ReviewInput is what a customer submits; rating is clamped by the store.
type ReviewInput struct {
	UserName string  `json:"userName"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
}

type Provider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo"`

	Location string  `json:"location"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Distance string  `json:"distance"` // static label shown when no live coordinate exists

	BasePrice       float64 `json:"basePrice"`
	ConsultationFee float64 `json:"consultationFee"`
	ServiceFee      float64 `json:"serviceFee"`
	BookingCharge   float64 `json:"bookingCharge"`

	Rating           float64 `json:"rating"`           // mean of reviews, one decimal
	ReliabilityScore float64 `json:"reliabilityScore"` // 0..100, seed data
	AcceptRate       float64 `json:"acceptRate"`
	RejectRate       float64 `json:"rejectRate"`
	TotalBookings    int     `json:"totalBookings"`
	Cancellations    int     `json:"cancellations"`

	Services     []string  `json:"services"`
	ServiceTuple [2]string `json:"serviceTuple"`

	Blocked      bool `json:"blocked"`
	FlaggedCount int  `json:"flaggedCount"`

	Reviews []Review `json:"reviews"` // most recent first
}

// Position returns the provider's coordinate.
func (p Provider) Position() LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// PrimaryService is the label recorded on new bookings.
func (p Provider) PrimaryService() string {
	if len(p.Services) == 0 {
		return ""
	}
	return p.Services[0]
}

// Clone returns a deep copy; services and reviews are copied independently.
func (p Provider) Clone() Provider {
	out := p
	if p.Services != nil {
		out.Services = append([]string(nil), p.Services...)
	}
	if p.Reviews != nil {
		out.Reviews = append([]Review(nil), p.Reviews...)
	}
	return out
}
