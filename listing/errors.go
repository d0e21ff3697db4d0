package listing

import "errors"

// Every failure of the URL-to-listing path maps onto one of these; the
// pipeline turns them into reply texts with errors.Is.
var (
	// ErrNotAListing: the message is not an easyhata listing URL at all.
	ErrNotAListing = errors.New("not a listing url")

	// ErrMalformedURL: recognized prefix but the path is too short or an
	// expected segment is empty.
	ErrMalformedURL = errors.New("malformed listing url")

	// ErrFetchFailed: transport-level failure or non-2xx from the API.
	ErrFetchFailed = errors.New("listing fetch failed")

	// ErrMalformedResponse: 2xx body that is not a well-formed listing
	// record, or one carrying an upstream error flag.
	ErrMalformedResponse = errors.New("malformed listing response")
)
