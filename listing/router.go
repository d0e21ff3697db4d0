package listing

import (
	"fmt"
	"strings"

	"arendnipro_bot/models"
)

const (
	flatsPrefix  = "https://easyhata.site/flats/"
	housesPrefix = "https://easyhata.site/houses/"
)

// ParseURL recognizes an easyhata listing URL and extracts the reference
// needed to build the API request. The path shape is fixed:
// https://easyhata.site/<type>/<id>/... with an optional /rieltor/<agent>
// pair anywhere after it.
func ParseURL(raw string) (models.ListingRef, error) {
	if !strings.HasPrefix(raw, flatsPrefix) && !strings.HasPrefix(raw, housesPrefix) {
		return models.ListingRef{}, ErrNotAListing
	}

	parts := strings.Split(raw, "/")
	// [https:, "", easyhata.site, <type>, <id>, ...]
	if len(parts) < 5 {
		return models.ListingRef{}, fmt.Errorf("%w: %d path segments", ErrMalformedURL, len(parts))
	}

	ref := models.ListingRef{
		RealtyType: models.RealtyType(parts[3]),
		RealtyID:   strings.SplitN(parts[4], "?", 2)[0],
		AgentID:    models.DefaultAgentID,
	}
	if ref.RealtyID == "" {
		return models.ListingRef{}, fmt.Errorf("%w: empty listing id", ErrMalformedURL)
	}

	for i, part := range parts {
		if part == "rieltor" && i+1 < len(parts) {
			if agent := strings.SplitN(parts[i+1], "?", 2)[0]; agent != "" {
				ref.AgentID = agent
			}
			break
		}
	}

	return ref, nil
}

// Endpoint builds the upstream API URL for a reference.
func Endpoint(base string, ref models.ListingRef) string {
	return fmt.Sprintf("%s/v1/rieltors/%s/%s/%s/", strings.TrimRight(base, "/"), ref.AgentID, ref.RealtyType, ref.RealtyID)
}
