package marketplaceRepo

import "apna/models"

// DefaultSeed returns the demo dataset: six providers around Mumbai, a few
// bookings on each side and the landing-page categories. Each call returns
// fresh slices.
func DefaultSeed() Seed {
	return Seed{
		CurrentUser: models.CurrentUser{
			ID:       "u1",
			Name:     "Aarav Shah",
			Email:    "aarav.shah@example.com",
			Location: "Kurla",
		},
		Providers: []models.Provider{
			{
				ID:               "1",
				Name:             "Priya Sharma",
				Photo:            "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400",
				Location:         "Kurla",
				Lat:              19.0726,
				Lng:              72.8845,
				Distance:         "0.8 km",
				BasePrice:        50,
				ConsultationFee:  10,
				ServiceFee:       8,
				BookingCharge:    5,
				Rating:           4.9,
				ReliabilityScore: 98,
				AcceptRate:       95,
				RejectRate:       5,
				TotalBookings:    342,
				Cancellations:    3,
				Services:         []string{"House Cleaning", "Deep Cleaning", "Move-in/Move-out"},
				ServiceTuple:     [2]string{"House Cleaning", "Deep Cleaning"},
				Reviews: []models.Review{
					{ID: "r1", UserName: "Rohan Desai", Rating: 5, Comment: "Excellent service! Very thorough and professional.", Date: "2026-02-10"},
					{ID: "r2", UserName: "Meera Patil", Rating: 5, Comment: "Best cleaning service I've used. Highly reliable!", Date: "2026-02-08"},
					{ID: "r3", UserName: "Arjun Kulkarni", Rating: 4, Comment: "Great work, arrived on time.", Date: "2026-02-05"},
				},
			},
			{
				ID:               "2",
				Name:             "Rahul Mehta",
				Photo:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
				Location:         "Andheri",
				Lat:              19.1136,
				Lng:              72.8697,
				Distance:         "1.2 km",
				BasePrice:        65,
				ConsultationFee:  15,
				ServiceFee:       10,
				BookingCharge:    5,
				Rating:           4.8,
				ReliabilityScore: 95,
				AcceptRate:       92,
				RejectRate:       8,
				TotalBookings:    287,
				Cancellations:    5,
				Services:         []string{"Plumbing", "Emergency Repairs", "Installation"},
				ServiceTuple:     [2]string{"Plumbing", "Emergency Repairs"},
				Reviews: []models.Review{
					{ID: "r4", UserName: "Sneha Iyer", Rating: 5, Comment: "Fixed my leak quickly and efficiently!", Date: "2026-02-12"},
					{ID: "r5", UserName: "Vikram Joshi", Rating: 5, Comment: "Very knowledgeable and professional.", Date: "2026-02-09"},
				},
			},
			{
				ID:               "3",
				Name:             "Ananya Nair",
				Photo:            "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400",
				Location:         "Bandra",
				Lat:              19.0596,
				Lng:              72.8295,
				Distance:         "2.1 km",
				BasePrice:        45,
				ConsultationFee:  5,
				ServiceFee:       7,
				BookingCharge:    5,
				Rating:           4.7,
				ReliabilityScore: 93,
				AcceptRate:       88,
				RejectRate:       12,
				TotalBookings:    456,
				Cancellations:    12,
				Services:         []string{"Pet Sitting", "Dog Walking", "Pet Care"},
				ServiceTuple:     [2]string{"Pet Sitting", "Pet Care"},
				Reviews: []models.Review{
					{ID: "r6", UserName: "Karan Malhotra", Rating: 5, Comment: "My dog loves her! Very caring and reliable.", Date: "2026-02-11"},
				},
			},
			{
				ID:               "4",
				Name:             "Siddharth Rao",
				Photo:            "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400",
				Location:         "Malad",
				Lat:              19.1874,
				Lng:              72.8484,
				Distance:         "1.5 km",
				BasePrice:        80,
				ConsultationFee:  20,
				ServiceFee:       12,
				BookingCharge:    5,
				Rating:           4.9,
				ReliabilityScore: 97,
				AcceptRate:       96,
				RejectRate:       4,
				TotalBookings:    198,
				Cancellations:    2,
				Services:         []string{"Electrical Work", "Wiring", "Installation"},
				ServiceTuple:     [2]string{"Electrical Work", "Wiring"},
				Reviews: []models.Review{
					{ID: "r7", UserName: "Neha Kapoor", Rating: 5, Comment: "Expert electrician, very professional!", Date: "2026-02-13"},
				},
			},
			{
				ID:               "5",
				Name:             "Aditi Verma",
				Photo:            "https://images.unsplash.com/photo-1573497019940-1c28c88b4f3e?w=400",
				Location:         "Borivali",
				Lat:              19.2307,
				Lng:              72.8567,
				Distance:         "3.2 km",
				BasePrice:        55,
				ConsultationFee:  10,
				ServiceFee:       8,
				BookingCharge:    5,
				Rating:           4.6,
				ReliabilityScore: 91,
				AcceptRate:       85,
				RejectRate:       15,
				TotalBookings:    234,
				Cancellations:    8,
				Services:         []string{"Gardening", "Landscaping", "Lawn Care"},
				ServiceTuple:     [2]string{"Gardening", "Landscaping"},
				Reviews: []models.Review{
					{ID: "r8", UserName: "Suresh Pawar", Rating: 4, Comment: "Good work, made my garden look great.", Date: "2026-02-07"},
				},
			},
			{
				ID:               "6",
				Name:             "Manoj Kulkarni",
				Photo:            "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d?w=400",
				Location:         "Vashi",
				Lat:              19.0771,
				Lng:              72.9986,
				Distance:         "0.5 km",
				BasePrice:        70,
				ConsultationFee:  15,
				ServiceFee:       10,
				BookingCharge:    5,
				Rating:           4.9,
				ReliabilityScore: 99,
				AcceptRate:       98,
				RejectRate:       2,
				TotalBookings:    412,
				Cancellations:    1,
				Services:         []string{"AC Repair", "HVAC Installation", "Maintenance"},
				ServiceTuple:     [2]string{"AC Repair", "HVAC Installation"},
				Reviews: []models.Review{
					{ID: "r9", UserName: "Pooja Deshmukh", Rating: 5, Comment: "Amazing service! Fixed my AC in no time.", Date: "2026-02-14"},
				},
			},
		},
		UserBookings: []models.Booking{
			{ID: "b1", ProviderID: "1", ProviderName: "Priya Sharma", Service: "House Cleaning", Date: "2026-02-20", Time: "10:00 AM", Status: models.BookingConfirmed, Amount: 73, Type: models.BookingOneTime},
			{ID: "b2", ProviderID: "2", ProviderName: "Rahul Mehta", Service: "Plumbing", Date: "2026-02-15", Time: "2:00 PM", Status: models.BookingCompleted, Amount: 95, Type: models.BookingOneTime},
			{ID: "b3", ProviderID: "3", ProviderName: "Ananya Nair", Service: "Pet Sitting", Date: "2026-02-18", Time: "9:00 AM", Status: models.BookingPending, Amount: 62, Type: models.BookingContract},
		},
		ProviderBookings: []models.Booking{
			{ID: "pb1", ProviderID: "1", ProviderName: "John Davis", Service: "House Cleaning", Date: "2026-02-16", Time: "11:00 AM", Status: models.BookingPending, Amount: 73, Type: models.BookingOneTime},
			{ID: "pb2", ProviderID: "1", ProviderName: "Emily Brown", Service: "Deep Cleaning", Date: "2026-02-17", Time: "3:00 PM", Status: models.BookingPending, Amount: 120, Type: models.BookingOneTime},
			{ID: "pb3", ProviderID: "1", ProviderName: "Robert Wilson", Service: "Move-in Cleaning", Date: "2026-02-22", Time: "10:00 AM", Status: models.BookingConfirmed, Amount: 150, Type: models.BookingContract},
		},
		PopularServices: []models.PopularService{
			{Name: "House Cleaning", Icon: "Home", Count: 1245},
			{Name: "Plumbing", Icon: "Wrench", Count: 876},
			{Name: "Electrical Work", Icon: "Zap", Count: 654},
			{Name: "Pet Care", Icon: "PawPrint", Count: 543},
			{Name: "Gardening", Icon: "Flower2", Count: 432},
			{Name: "AC Repair", Icon: "Wind", Count: 398},
		},
	}
}
