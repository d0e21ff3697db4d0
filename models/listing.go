package models

// RealtyType is the listing category segment of an easyhata URL.
type RealtyType string

const (
	RealtyFlats  RealtyType = "flats"
	RealtyHouses RealtyType = "houses"
)

// DefaultAgentID is used when the URL carries no rieltor segment.
const DefaultAgentID = "11249"

// ListingRef identifies one listing on the upstream API. Built once per
// inbound URL and discarded when the message is handled.
type ListingRef struct {
	RealtyType RealtyType
	RealtyID   string
	AgentID    string
}

// Listing is the fetched record with every field already defaulted, so
// the composer never has to check for missing data.
type Listing struct {
	Description string
	City        string
	Street      string
	HouseNumber string
	Area        string
	Floor       string // current floor
	Floors      string // total floors
	Price       string
	Currency    string
	ContactName string
	Phone       string
	ID          string
	Images      []string // capped at MaxImages
}

// MaxImages is the media-group size limit of the outbound transport.
const MaxImages = 10
