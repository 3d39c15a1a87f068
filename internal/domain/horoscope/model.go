package horoscope

import "time"

// Record is one generated horoscope. It is built once and never mutated.
type Record struct {
	Sign   string `json:"sign"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Love   int    `json:"love"`
	Money  int    `json:"money"`
	Health int    `json:"health"`
}

// Request captures the inputs accepted by the service.
type Request struct {
	Sign string `json:"sign"`
	Date string `json:"date"`
}

// AllResponse groups the records of every sign for one day.
type AllResponse struct {
	Date       string   `json:"date"`
	Horoscopes []Record `json:"horoscopes"`
}

// Config wires runtime dependencies for the horoscope domain.
type Config struct {
	// Location decides which calendar day "today" is.
	Location *time.Location
}
