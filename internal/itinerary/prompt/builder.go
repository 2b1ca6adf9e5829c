// Package prompt builds the instruction text sent to the model. Pure string
// construction: user values are interpolated verbatim so the model cannot
// ignore them, and the required JSON shape is spelled out field by field.
package prompt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"itinerary-relay/internal/itinerary"
)

// generateTemplate is the full instruction for a fresh itinerary. The opening
// line doubles as the extraction contract for the mock generator: it must
// keep the "{days}-day" and "for {destination}." phrasing.
const generateTemplate = `Create a detailed {{days}}-day travel itinerary for {{destination}}.

User Requirements:
- Destination: {{destination}}
- Duration: {{days}} days
- Travel dates: {{startDate}} to {{endDate}}
- Travel style: {{travelStyle}}
- Interests: {{interests}}
- Budget level: {{budget}}
- Additional requests: {{additionalRequests}}

CRITICAL: Return ONLY valid JSON with this exact structure (no markdown, no explanations):
{
  "id": "{{itineraryId}}",
  "title": "Engaging trip title for {{destination}}",
  "description": "Compelling 2-3 sentence description highlighting unique experiences",
  "destination": {
    "name": "{{destination}}",
    "country": "Actual country name",
    "region": "Region/state if applicable",
    "coordinates": {"latitude": actual_latitude, "longitude": actual_longitude},
    "timezone": "Timezone (e.g., America/New_York)",
    "currency": "Local currency code",
    "language": "Primary language"
  },
  "duration": {
    "days": {{days}},
    "startDate": "{{startDate}}",
    "endDate": "{{endDate}}"
  },
  "budget": {
    "total": realistic_total_estimate,
    "currency": "USD",
    "breakdown": {
      "accommodation": accommodation_cost,
      "transportation": transport_cost,
      "activities": activities_cost,
      "meals": meals_cost,
      "shopping": shopping_estimate,
      "miscellaneous": misc_cost
    }
  },
  "activities": [
    {
      "id": "activity_day_sequence",
      "name": "Specific activity name",
      "description": "Detailed description explaining why this is special and what to expect",
      "type": "sightseeing|adventure|cultural|entertainment|dining|shopping|relaxation",
      "location": {
        "name": "Exact location name",
        "address": "Complete address with city",
        "coordinates": {"latitude": precise_lat, "longitude": precise_lng},
        "type": "attraction|restaurant|hotel|landmark"
      },
      "duration": duration_in_minutes,
      "cost": {
        "amount": realistic_cost,
        "currency": "USD",
        "type": "per_person"
      },
      "rating": 4.0_to_5.0,
      "day": day_number_1_to_{{days}},
      "timeSlot": "morning|afternoon|evening|night",
      "images": ["https://images.unsplash.com/relevant-image"],
      "bookingUrl": "https://example.com/book-if-available"
    }
  ],
  "accommodations": [
    {
      "id": "accommodation_1",
      "name": "Specific hotel/accommodation name",
      "type": "hotel|hostel|apartment|resort|guesthouse",
      "location": {
        "name": "Hotel location area",
        "address": "Complete hotel address",
        "coordinates": {"latitude": hotel_lat, "longitude": hotel_lng},
        "type": "hotel"
      },
      "checkIn": "{{startDate}}",
      "checkOut": "{{endDate}}",
      "cost": {
        "amount": total_accommodation_cost,
        "currency": "USD",
        "type": "total"
      },
      "rating": 4.0_to_5.0,
      "amenities": ["Free WiFi", "Breakfast", "Gym", "Pool", "Spa", "Restaurant"],
      "bookingUrl": "https://booking-site.com/hotel-link"
    }
  ],
  "transportation": [
    {
      "id": "transport_arrival",
      "type": "flight|train|bus|car",
      "from": {"name": "Origin city/airport", "address": "Origin address", "type": "airport|station"},
      "to": {"name": "{{destination}} airport/station", "address": "Destination address", "type": "airport|station"},
      "departure": "{{startDate}}T10:00:00Z",
      "arrival": "{{startDate}}T14:00:00Z",
      "cost": {
        "amount": realistic_transport_cost,
        "currency": "USD",
        "type": "per_person"
      },
      "duration": duration_in_minutes,
      "provider": "Airline/transport company",
      "day": 1
    }
  ],
  "meals": [
    {
      "id": "meal_day_mealtype",
      "name": "Specific restaurant name",
      "type": "breakfast|lunch|dinner|snack",
      "location": {
        "name": "Restaurant name",
        "address": "Restaurant address",
        "coordinates": {"latitude": restaurant_lat, "longitude": restaurant_lng},
        "type": "restaurant"
      },
      "time": "HH:MM",
      "cost": {
        "amount": realistic_meal_cost,
        "currency": "USD",
        "type": "per_person"
      },
      "cuisine": "cuisine_type",
      "rating": 4.0_to_5.0,
      "day": day_number,
      "bookingUrl": "restaurant-booking-link-if-available"
    }
  ],
  "status": "generated",
  "metadata": {
    "generatedBy": "claude-3-haiku",
    "version": 1,
    "tags": [{{tags}}],
    "difficulty": "easy|moderate|challenging",
    "season": "spring|summer|autumn|winter",
    "groupSize": estimated_group_size,
    "accessibility": "full|partial|limited"
  },
  "createdAt": "{{now}}",
  "updatedAt": "{{now}}"
}

REQUIREMENTS:
1. Create {{minActivities}}-{{maxActivities}} activities total (3-4 per day) with realistic timing
2. Include specific, real places with accurate coordinates and addresses
3. Balance activities based on interests: {{interests}}
4. Respect {{budget}} budget level with realistic pricing
5. Consider travel time between locations (group nearby activities)
6. Include breakfast, lunch, dinner recommendations for each day
7. Suggest 1-2 accommodation options that fit the budget and location
8. Add transportation details (flights, local transport)
9. Use real restaurant names, attractions, and hotels when possible
10. Ensure all coordinates are accurate for the destination
11. Make descriptions engaging and informative (2-3 sentences each)
12. Include practical details like duration, costs, and booking info

CRITICAL: Return ONLY the JSON object. No markdown formatting, no explanations, no additional text.`

// BuildGenerate renders the generate instruction for a trip request. Empty
// interests or a zero day count pass through unchanged; validating the
// request is the caller's job.
func BuildGenerate(req itinerary.TripRequest) string {
	now := time.Now().UTC().Format(time.RFC3339)
	additional := req.AdditionalRequests
	if additional == "" {
		additional = "None"
	}

	r := strings.NewReplacer(
		"{{destination}}", req.Destination,
		"{{days}}", fmt.Sprintf("%d", req.NumberOfDays),
		"{{startDate}}", req.TravelDates.Start,
		"{{endDate}}", req.TravelDates.End,
		"{{travelStyle}}", req.TravelStyle,
		"{{interests}}", strings.Join(req.Interests, ", "),
		"{{budget}}", req.Budget,
		"{{additionalRequests}}", additional,
		"{{itineraryId}}", fmt.Sprintf("itinerary_%d", time.Now().UnixMilli()),
		"{{tags}}", quoteList(req.Interests),
		"{{minActivities}}", fmt.Sprintf("%d", req.NumberOfDays*3),
		"{{maxActivities}}", fmt.Sprintf("%d", req.NumberOfDays*4),
		"{{now}}", now,
	)
	return r.Replace(generateTemplate)
}

// BuildCustomize renders the customize instruction: the full current
// itinerary serialized alongside the free-text edit request, with
// instructions to preserve structure and bump the version counter.
func BuildCustomize(req itinerary.CustomizeRequest) (string, error) {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, req.Itinerary, "", "  "); err != nil {
		return "", fmt.Errorf("serialize itinerary: %w", err)
	}

	return fmt.Sprintf(`Modify the existing travel itinerary based on the user's request.

CURRENT ITINERARY:
%s

USER'S MODIFICATION REQUEST:
%s

INSTRUCTIONS:
1. Keep the same JSON structure and format
2. Only modify the specific parts requested by the user
3. Maintain logical flow, timing, and geographical proximity
4. Update costs and budget breakdown if activities change
5. Ensure new suggestions fit the destination, dates, and original preferences
6. Keep the same destination, duration, and travel dates unless specifically requested to change
7. Update the "updatedAt" timestamp to current time
8. Increment the version number in metadata

CRITICAL: Return ONLY the complete updated JSON object. No markdown, no explanations, no additional text.`,
		pretty.String(), req.CustomizationRequest), nil
}

// quoteList renders interests as a comma-separated list of quoted strings for
// the tags array in the JSON shape.
func quoteList(items []string) string {
	if len(items) == 0 {
		return `""`
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}
