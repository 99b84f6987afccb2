package session

// TuneSummary is a tune as listed by search and popularity queries.
type TuneSummary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Date string `json:"date"`
}

type SearchResult struct {
	Total int           `json:"total"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Tunes []TuneSummary `json:"tunes"`
}

// Setting is one member's transcription of a tune. ABC holds only the
// music lines, with '!' where the transcriber broke the line.
type Setting struct {
	ID    int    `json:"id"`
	URL   string `json:"url"`
	Key   string `json:"key"`
	Meter string `json:"meter"`
	ABC   string `json:"abc"`
	Date  string `json:"date"`
}

type Tune struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	URL      string    `json:"url"`
	Type     string    `json:"type"`
	Settings []Setting `json:"settings"`
}

type Set struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Date string `json:"date"`
}
