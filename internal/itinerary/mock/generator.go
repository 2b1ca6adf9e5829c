// Package mock produces a deterministic, structurally valid itinerary without
// calling the model. It exists so the UI and export paths can be exercised and
// demoed with no live credential.
package mock

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"itinerary-relay/internal/itinerary"
)

const (
	// DefaultDestination is used when the prompt yields no destination.
	DefaultDestination = "Your Destination"
	// DefaultDays is used when the prompt yields no day count.
	DefaultDays = 3
)

// Base point for synthetic coordinates; each day shifts by a small offset so
// map rendering never collapses onto a single pin.
const (
	baseLatitude  = 40.7128
	baseLongitude = -74.0060
	dayOffset     = 0.01
)

var (
	destinationPattern = regexp.MustCompile(`for (.+?)\.`)
	daysPattern        = regexp.MustCompile(`(\d+)-day`)
)

// ExtractParams recovers the destination and day count from prompt text,
// falling back to the defaults when the patterns do not match. This is the
// other half of the contract the generate prompt's opening line upholds.
func ExtractParams(prompt string) (destination string, days int) {
	destination = DefaultDestination
	days = DefaultDays

	if m := destinationPattern.FindStringSubmatch(prompt); m != nil {
		destination = m[1]
	}
	if m := daysPattern.FindStringSubmatch(prompt); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			days = n
		}
	}
	return destination, days
}

// FromPrompt derives parameters from prompt text and generates an itinerary.
func FromPrompt(prompt string) *itinerary.Itinerary {
	destination, days := ExtractParams(prompt)
	return Generate(destination, days)
}

// Generate builds the mock itinerary: per day one morning sightseeing
// activity and one afternoon dining activity plus breakfast and lunch, a
// single hotel spanning the whole stay, and one inbound flight on day 1.
func Generate(destination string, days int) *itinerary.Itinerary {
	now := time.Now().UTC()
	startDate := now.Format("2006-01-02")
	endDate := now.AddDate(0, 0, days).Format("2006-01-02")

	activities := make([]itinerary.Activity, 0, 2*days)
	meals := make([]itinerary.Meal, 0, 2*days)

	for dayIndex := 0; dayIndex < days; dayIndex++ {
		day := dayIndex + 1
		coords := &itinerary.Coordinates{
			Latitude:  baseLatitude + float64(dayIndex)*dayOffset,
			Longitude: baseLongitude + float64(dayIndex)*dayOffset,
		}

		activities = append(activities,
			itinerary.Activity{
				ID:          fmt.Sprintf("activity_%d_1", dayIndex),
				Name:        fmt.Sprintf("Morning Adventure in %s", destination),
				Description: fmt.Sprintf("Start your day %d with an exciting exploration of %s's most famous landmarks and hidden gems.", day, destination),
				Type:        "sightseeing",
				Location: itinerary.Location{
					Name:        fmt.Sprintf("%s City Center", destination),
					Address:     fmt.Sprintf("Main Street, %s", destination),
					Coordinates: coords,
					Type:        "attraction",
				},
				Duration:   180,
				Cost:       itinerary.Cost{Amount: 25, Currency: "USD", Type: "per_person"},
				Day:        day,
				TimeSlot:   "morning",
				Images:     []string{"https://images.unsplash.com/photo-1506905925346-21bda4d32df4"},
				BookingURL: "https://example.com/book",
			},
			itinerary.Activity{
				ID:          fmt.Sprintf("activity_%d_2", dayIndex),
				Name:        "Local Cuisine Experience",
				Description: fmt.Sprintf("Discover authentic local flavors and traditional dishes that make %s special.", destination),
				Type:        "dining",
				Location: itinerary.Location{
					Name:        "Traditional Restaurant",
					Address:     fmt.Sprintf("Food Street, %s", destination),
					Coordinates: coords,
					Type:        "restaurant",
				},
				Duration:   120,
				Cost:       itinerary.Cost{Amount: 40, Currency: "USD", Type: "per_person"},
				Day:        day,
				TimeSlot:   "afternoon",
				Images:     []string{"https://images.unsplash.com/photo-1504674900247-0877df9cc836"},
				BookingURL: "https://example.com/book",
			},
		)

		meals = append(meals,
			itinerary.Meal{
				ID:   fmt.Sprintf("meal_%d_breakfast", dayIndex),
				Name: "Local Breakfast Spot",
				Type: "breakfast",
				Location: itinerary.Location{
					Name:    fmt.Sprintf("Cafe %s", destination),
					Address: fmt.Sprintf("Breakfast Street, %s", destination),
					Type:    "restaurant",
				},
				Time:    "08:00",
				Cost:    itinerary.Cost{Amount: 15, Currency: "USD", Type: "per_person"},
				Cuisine: "local",
				Rating:  4.2,
				Day:     day,
			},
			itinerary.Meal{
				ID:   fmt.Sprintf("meal_%d_lunch", dayIndex),
				Name: fmt.Sprintf("Popular %s Restaurant", destination),
				Type: "lunch",
				Location: itinerary.Location{
					Name:    "Best Local Eatery",
					Address: fmt.Sprintf("Food Square, %s", destination),
					Type:    "restaurant",
				},
				Time:    "12:30",
				Cost:    itinerary.Cost{Amount: 25, Currency: "USD", Type: "per_person"},
				Cuisine: "fusion",
				Rating:  4.6,
				Day:     day,
			},
		)
	}

	return &itinerary.Itinerary{
		ID:          fmt.Sprintf("mock_%s", uuid.NewString()),
		Title:       fmt.Sprintf("Amazing %d-Day Trip to %s", days, destination),
		Description: fmt.Sprintf("A carefully curated %d-day itinerary for %s featuring the best attractions, local cuisine, and cultural experiences.", days, destination),
		Destination: itinerary.Destination{
			Name:        destination,
			Country:     "Demo Country",
			Coordinates: &itinerary.Coordinates{Latitude: baseLatitude, Longitude: baseLongitude},
		},
		Duration: itinerary.Duration{
			Days:      days,
			StartDate: startDate,
			EndDate:   endDate,
		},
		Budget: itinerary.Budget{
			Total:    float64(days) * 150,
			Currency: "USD",
		},
		Activities: activities,
		Accommodations: []itinerary.Accommodation{
			{
				ID:   "accommodation_1",
				Name: fmt.Sprintf("Cozy %s Hotel", destination),
				Type: "hotel",
				Location: itinerary.Location{
					Name:    fmt.Sprintf("%s Downtown", destination),
					Address: fmt.Sprintf("Hotel Street, %s", destination),
					Type:    "hotel",
				},
				CheckIn:    startDate,
				CheckOut:   endDate,
				Cost:       itinerary.Cost{Amount: float64(days) * 80, Currency: "USD", Type: "total"},
				Rating:     4.5,
				Amenities:  []string{"wifi", "breakfast", "gym", "spa"},
				BookingURL: "https://example.com/book-hotel",
			},
		},
		Transportation: []itinerary.Transportation{
			{
				ID:        "transport_1",
				Type:      "flight",
				From:      itinerary.TransportStop{Name: "Your City"},
				To:        itinerary.TransportStop{Name: destination},
				Departure: now.Format(time.RFC3339),
				Arrival:   now.Add(2 * time.Hour).Format(time.RFC3339),
				Cost:      itinerary.Cost{Amount: 300, Currency: "USD", Type: "per_person"},
				Day:       1,
			},
		},
		Meals:  meals,
		Status: "generated",
		Metadata: &itinerary.Metadata{
			GeneratedBy: "mock",
			Version:     1,
		},
		CreatedAt: now.Format(time.RFC3339),
		UpdatedAt: now.Format(time.RFC3339),
	}
}
