package news

// Item is one normalized player-news entry.
type Item struct {
	Player   string `json:"player"`
	Team     string `json:"team,omitempty"`
	Headline string `json:"headline"`
	Report   string `json:"report,omitempty"`
	Date     string `json:"date,omitempty"`
}

// Feed is the payload returned by /news.
type Feed struct {
	Items []Item `json:"items"`
}
