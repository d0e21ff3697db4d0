package httputil

import (
	"net/http"
	"time"
)

// Browser-like identification the upstream expects; requests without it
// get bot-filtered.
const UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"

type Clients struct {
	API   *http.Client // listing API calls
	Media *http.Client // image downloads, longer timeout
}

func NewClients() *Clients {
	return &Clients{
		API:   &http.Client{Timeout: 10 * time.Second},
		Media: &http.Client{Timeout: 30 * time.Second},
	}
}
