package models

// ReminderPayload is the body of a queued booking reminder.
type ReminderPayload struct {
	BookingID    string `json:"bookingId"`
	ProviderID   string `json:"providerId"`
	ProviderName string `json:"providerName"`
	Service      string `json:"service"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	FireDate     string `json:"fireDate"`
}
