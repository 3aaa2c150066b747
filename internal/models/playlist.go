package models

// Video is one entry of the customer-display playlist.
type Video struct {
	// ID is the unique identifier for the video (UUID format).
	ID    string
	Title string
	URL   string
}
