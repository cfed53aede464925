package booking

import (
	"math"

	"apna/models"
)

const (
	// CancellationInsuranceFee is added to the displayed total for providers
	// with any previous cancellation.
	CancellationInsuranceFee = 15.0
	// cancellationNoticeThreshold is the count above which customers are warned.
	cancellationNoticeThreshold = 3
)

// PriceQuote is the breakdown shown before a customer confirms a booking.
//
// Total includes the insurance fee; Recorded is what the store will persist
// as the booking amount, which never includes it. InsuranceNotRecorded is set
// whenever the two differ.
type PriceQuote struct {
	ProviderID           string  `json:"providerId"`
	BasePrice            float64 `json:"basePrice"`
	BookingCharge        float64 `json:"bookingCharge"`
	ConsultationFee      float64 `json:"consultationFee"`
	ServiceFee           float64 `json:"serviceFee"`
	InsuranceFee         float64 `json:"insuranceFee"`
	Total                float64 `json:"total"`
	Recorded             float64 `json:"recorded"`
	InsuranceNotRecorded bool    `json:"insuranceNotRecorded"`
	CancellationNotice   bool    `json:"cancellationNotice"`
	Cancellations        int     `json:"cancellations"`
	CancellationRate     float64 `json:"cancellationRate"`
}

// RecordedAmount is the amount persisted for a new booking with p.
func RecordedAmount(p models.Provider) float64 {
	return p.BasePrice + p.BookingCharge + p.ConsultationFee + p.ServiceFee
}

func Quote(p models.Provider) PriceQuote {
	q := PriceQuote{
		ProviderID:         p.ID,
		BasePrice:          p.BasePrice,
		BookingCharge:      p.BookingCharge,
		ConsultationFee:    p.ConsultationFee,
		ServiceFee:         p.ServiceFee,
		Recorded:           RecordedAmount(p),
		CancellationNotice: ShowCancellationNotice(p),
		Cancellations:      p.Cancellations,
		CancellationRate:   CancellationRate(p),
	}
	if p.Cancellations > 0 {
		q.InsuranceFee = CancellationInsuranceFee
	}
	q.Total = q.Recorded + q.InsuranceFee
	q.InsuranceNotRecorded = q.Total != q.Recorded
	return q
}

func ShowCancellationNotice(p models.Provider) bool {
	return p.Cancellations > cancellationNoticeThreshold
}

// CancellationRate is cancellations as a percentage of total bookings, one decimal.
func CancellationRate(p models.Provider) float64 {
	if p.TotalBookings <= 0 {
		return 0
	}
	return math.Round(float64(p.Cancellations)/float64(p.TotalBookings)*1000) / 10
}
