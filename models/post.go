package models

// Post is a composed channel publication: HTML-formatted body (anchor
// tags only) plus up to MaxImages image URLs.
type Post struct {
	Body   string
	Images []string
}

// Telegram hard limits. CaptionLimit applies to text attached to media;
// MessageLimit to a standalone text message.
const (
	CaptionLimit = 1024
	MessageLimit = 4096
)
