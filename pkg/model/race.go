package model

// Race is a single grand prix. Within a season Round is unique and defines
// the chronological order.
type Race struct {
	ID        int    `json:"raceId"`
	Year      int    `json:"year"`
	Round     int    `json:"round"`
	CircuitID int    `json:"circuitId"`
	Name      string `json:"name"`
	Date      string `json:"date,omitempty"`
}

type Season struct {
	Year int    `json:"year"`
	URL  string `json:"url,omitempty"`
}

type Circuit struct {
	ID       int     `json:"circuitId"`
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}
