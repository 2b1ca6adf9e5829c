package normalize

// itinerarySchema is the structural contract for model output. Required
// fields stay minimal (what every consumer depends on) while numeric bounds
// enforce the hard invariants: at least one day, non-negative money, and
// coordinates inside valid ranges.
const itinerarySchema = `{
  "$schema": "http://json-schema.org/draft-04/schema#",
  "type": "object",
  "required": ["id", "title", "destination", "duration", "activities"],
  "properties": {
    "id": {"type": "string"},
    "title": {"type": "string"},
    "description": {"type": "string"},
    "destination": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "country": {"type": "string"},
        "region": {"type": "string"},
        "coordinates": {"$ref": "#/definitions/coordinates"},
        "timezone": {"type": "string"},
        "currency": {"type": "string"},
        "language": {"type": "string"}
      }
    },
    "duration": {
      "type": "object",
      "required": ["days"],
      "properties": {
        "days": {"type": "integer", "minimum": 1},
        "startDate": {"type": "string"},
        "endDate": {"type": "string"}
      }
    },
    "budget": {
      "type": "object",
      "properties": {
        "total": {"type": "number", "minimum": 0},
        "currency": {"type": "string"},
        "breakdown": {"type": "object"}
      }
    },
    "activities": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "day"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "type": {"type": "string"},
          "location": {"$ref": "#/definitions/location"},
          "duration": {"type": "integer", "minimum": 0},
          "cost": {"$ref": "#/definitions/cost"},
          "rating": {"type": "number", "minimum": 0, "maximum": 5},
          "day": {"type": "integer", "minimum": 1},
          "timeSlot": {"type": "string"}
        }
      }
    },
    "accommodations": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "location": {"$ref": "#/definitions/location"},
          "cost": {"$ref": "#/definitions/cost"},
          "rating": {"type": "number", "minimum": 0, "maximum": 5}
        }
      }
    },
    "transportation": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "cost": {"$ref": "#/definitions/cost"},
          "day": {"type": "integer", "minimum": 0}
        }
      }
    },
    "meals": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name"],
        "properties": {
          "location": {"$ref": "#/definitions/location"},
          "cost": {"$ref": "#/definitions/cost"},
          "day": {"type": "integer", "minimum": 1},
          "rating": {"type": "number", "minimum": 0, "maximum": 5}
        }
      }
    },
    "status": {"type": "string"},
    "metadata": {"type": "object"},
    "createdAt": {"type": "string"},
    "updatedAt": {"type": "string"}
  },
  "definitions": {
    "coordinates": {
      "type": "object",
      "required": ["latitude", "longitude"],
      "properties": {
        "latitude": {"type": "number", "minimum": -90, "maximum": 90},
        "longitude": {"type": "number", "minimum": -180, "maximum": 180}
      }
    },
    "cost": {
      "type": "object",
      "required": ["amount"],
      "properties": {
        "amount": {"type": "number", "minimum": 0},
        "currency": {"type": "string"},
        "type": {"type": "string"}
      }
    },
    "location": {
      "type": "object",
      "required": ["name"],
      "properties": {
        "name": {"type": "string"},
        "address": {"type": "string"},
        "coordinates": {"$ref": "#/definitions/coordinates"},
        "type": {"type": "string"}
      }
    }
  }
}`
