// Package itinerary contains the trip-plan data model and the
// validate/build/invoke/normalize pipeline behind the relay endpoints.
package itinerary

import "encoding/json"

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes a named place an activity, meal, or stay happens at.
type Location struct {
	Name        string       `json:"name"`
	Address     string       `json:"address,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Type        string       `json:"type,omitempty"` // attraction|restaurant|hotel|landmark
}

// Destination is the trip's target city or region.
type Destination struct {
	Name        string       `json:"name"`
	Country     string       `json:"country,omitempty"`
	Region      string       `json:"region,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Timezone    string       `json:"timezone,omitempty"`
	Currency    string       `json:"currency,omitempty"`
	Language    string       `json:"language,omitempty"`
}

// Duration spans the trip in whole days.
type Duration struct {
	Days      int    `json:"days"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation,omitempty"`
	Transportation float64 `json:"transportation,omitempty"`
	Activities     float64 `json:"activities,omitempty"`
	Meals          float64 `json:"meals,omitempty"`
	Shopping       float64 `json:"shopping,omitempty"`
	Miscellaneous  float64 `json:"miscellaneous,omitempty"`
}

type Budget struct {
	Total     float64          `json:"total"`
	Currency  string           `json:"currency"`
	Breakdown *BudgetBreakdown `json:"breakdown,omitempty"`
}

// Cost is a money amount with a pricing basis (per_person or total).
type Cost struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Type     string  `json:"type,omitempty"`
}

type Activity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"` // sightseeing|adventure|cultural|entertainment|dining|shopping|relaxation
	Location    Location `json:"location"`
	Duration    int      `json:"duration,omitempty"` // minutes
	Cost        Cost     `json:"cost"`
	Rating      float64  `json:"rating,omitempty"`
	Day         int      `json:"day"`
	TimeSlot    string   `json:"timeSlot,omitempty"` // morning|afternoon|evening|night
	Images      []string `json:"images,omitempty"`
	BookingURL  string   `json:"bookingUrl,omitempty"`
}

type Accommodation struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"` // hotel|hostel|apartment|resort|guesthouse
	Location   Location `json:"location"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Cost       Cost     `json:"cost"`
	Rating     float64  `json:"rating,omitempty"`
	Amenities  []string `json:"amenities,omitempty"`
	BookingURL string   `json:"bookingUrl,omitempty"`
}

// TransportStop is one end of a transportation leg.
type TransportStop struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Type    string `json:"type,omitempty"` // airport|station
}

type Transportation struct {
	ID        string        `json:"id"`
	Type      string        `json:"type"` // flight|train|bus|car
	From      TransportStop `json:"from"`
	To        TransportStop `json:"to"`
	Departure string        `json:"departure"`
	Arrival   string        `json:"arrival"`
	Cost      Cost          `json:"cost"`
	Duration  int           `json:"duration,omitempty"` // minutes
	Provider  string        `json:"provider,omitempty"`
	Day       int           `json:"day"`
}

type Meal struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"` // breakfast|lunch|dinner|snack
	Location   Location `json:"location"`
	Time       string   `json:"time,omitempty"` // HH:MM
	Cost       Cost     `json:"cost"`
	Cuisine    string   `json:"cuisine,omitempty"`
	Rating     float64  `json:"rating,omitempty"`
	Day        int      `json:"day"`
	BookingURL string   `json:"bookingUrl,omitempty"`
}

type Metadata struct {
	GeneratedBy   string   `json:"generatedBy,omitempty"`
	Version       int      `json:"version,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"` // easy|moderate|challenging
	Season        string   `json:"season,omitempty"`
	GroupSize     int      `json:"groupSize,omitempty"`
	Accessibility string   `json:"accessibility,omitempty"` // full|partial|limited
}

// Itinerary is the structured trip plan exchanged with clients and with the
// model. Field names match the JSON shape the generate prompt dictates.
type Itinerary struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description,omitempty"`
	Destination    Destination      `json:"destination"`
	Duration       Duration         `json:"duration"`
	Budget         Budget           `json:"budget"`
	Activities     []Activity       `json:"activities"`
	Accommodations []Accommodation  `json:"accommodations,omitempty"`
	Transportation []Transportation `json:"transportation,omitempty"`
	Meals          []Meal           `json:"meals,omitempty"`
	Status         string           `json:"status,omitempty"`
	Metadata       *Metadata        `json:"metadata,omitempty"`
	CreatedAt      string           `json:"createdAt,omitempty"`
	UpdatedAt      string           `json:"updatedAt,omitempty"`
}

// TravelDates are ISO dates (YYYY-MM-DD).
type TravelDates struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// TripRequest carries the user's trip preferences from the multi-step form.
// Immutable once constructed; one per submission.
type TripRequest struct {
	Destination        string      `json:"destination"`
	NumberOfDays       int         `json:"numberOfDays"`
	TravelDates        TravelDates `json:"travelDates"`
	TravelStyle        string      `json:"travelStyle"`
	Interests          []string    `json:"interests"`
	Budget             string      `json:"budget"`
	AdditionalRequests string      `json:"additionalRequests,omitempty"`
}

// GenerateRequest is the body of POST /api/itinerary/generate.
type GenerateRequest struct {
	SessionID string      `json:"sessionId"`
	UserInput TripRequest `json:"userInput"`
}

// CustomizeRequest is the body of POST /api/itinerary/customize. The
// itinerary is kept opaque so client-side fields we do not model survive the
// round trip into the prompt.
type CustomizeRequest struct {
	SessionID            string          `json:"sessionId"`
	Itinerary            json.RawMessage `json:"itinerary"`
	CustomizationRequest string          `json:"customizationRequest"`
}

// ErrorDetail is the error half of the response envelope.
type ErrorDetail struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ResponseData is the success payload of the response envelope.
type ResponseData struct {
	Itinerary *Itinerary `json:"itinerary"`
}

// APIResponse is the uniform envelope returned by every relay operation.
// Exactly one of Data/Error is populated.
type APIResponse struct {
	Success bool          `json:"success"`
	Data    *ResponseData `json:"data,omitempty"`
	Error   *ErrorDetail  `json:"error,omitempty"`
}
