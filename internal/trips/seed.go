package trips

import (
	"time"

	"github.com/travelbuddy/travelbuddy/internal/domain"
)

// seedTrips returns the sample trips every fresh process starts with.
func seedTrips() []domain.Trip {
	return []domain.Trip{
		{
			ID:               "1",
			CreatorID:        "2",
			CreatorName:      "Sarah Johnson",
			Title:            "Beach Adventure in Bali",
			Description:      "Join me for an amazing week exploring Bali beaches, temples, and local culture. Perfect for solo travelers looking to make new friends!",
			Destination:      "Bali, Indonesia",
			StartDate:        "2024-12-15",
			EndDate:          "2024-12-22",
			MaxTravelers:     4,
			CurrentTravelers: 2,
			PricePerPerson:   850,
			Status:           domain.TripStatusOpen,
			CreatedAt:        time.Date(2024, 11, 10, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:               "2",
			CreatorID:        "3",
			CreatorName:      "Mike Chen",
			Title:            "Mountain Hiking in Nepal",
			Description:      "Trek through the Himalayas with experienced hikers. Moderate difficulty level. All equipment provided.",
			Destination:      "Kathmandu, Nepal",
			StartDate:        "2024-12-20",
			EndDate:          "2024-12-28",
			MaxTravelers:     6,
			CurrentTravelers: 4,
			PricePerPerson:   1200,
			Status:           domain.TripStatusOpen,
			CreatedAt:        time.Date(2024, 11, 12, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:               "3",
			CreatorID:        "4",
			CreatorName:      "Emma Rodriguez",
			Title:            "European City Tour",
			Description:      "Visit Paris, Amsterdam, and Berlin in 10 days. Budget-friendly hostels, lots of museums and nightlife!",
			Destination:      "Paris, France",
			StartDate:        "2024-12-18",
			EndDate:          "2024-12-28",
			MaxTravelers:     5,
			CurrentTravelers: 3,
			PricePerPerson:   950,
			Status:           domain.TripStatusOpen,
			CreatedAt:        time.Date(2024, 11, 8, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:               "4",
			CreatorID:        "5",
			CreatorName:      "Alex Turner",
			Title:            "Safari Experience in Kenya",
			Description:      "Incredible wildlife safari with professional guides. See lions, elephants, and more in their natural habitat.",
			Destination:      "Nairobi, Kenya",
			StartDate:        "2025-01-05",
			EndDate:          "2025-01-12",
			MaxTravelers:     4,
			CurrentTravelers: 1,
			PricePerPerson:   1500,
			Status:           domain.TripStatusOpen,
			CreatedAt:        time.Date(2024, 11, 15, 16, 45, 0, 0, time.UTC),
		},
		{
			ID:               "5",
			CreatorID:        "6",
			CreatorName:      "Lisa Park",
			Title:            "Tokyo Food & Culture Tour",
			Description:      "Explore Tokyo authentic food scene, visit temples, and experience traditional tea ceremony.",
			Destination:      "Tokyo, Japan",
			StartDate:        "2024-12-25",
			EndDate:          "2025-01-02",
			MaxTravelers:     3,
			CurrentTravelers: 3,
			PricePerPerson:   1100,
			Status:           domain.TripStatusFull,
			CreatedAt:        time.Date(2024, 11, 5, 11, 20, 0, 0, time.UTC),
		},
	}
}
