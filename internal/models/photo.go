package models

// PhotoRecord is a date-stamped body photo. URL holds a data-encoded
// image. IDs are unique across the whole list; the store regenerates
// colliding ids on load.
type PhotoRecord struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}
