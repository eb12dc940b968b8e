package domain

// ViewID identifies the content shown under the tab bar
type ViewID string

const (
	ViewHome      ViewID = "home"
	ViewPopular   ViewID = "popular"
	ViewAiringNow ViewID = "airing_now"
	ViewFavorites ViewID = "favorites"
	ViewSearch    ViewID = "search"
	ViewDetails   ViewID = "details"
)

// TabViews is the tab bar, left to right
var TabViews = []ViewID{ViewHome, ViewPopular, ViewAiringNow, ViewFavorites}

// Title returns the label shown for the view
func (v ViewID) Title() string {
	switch v {
	case ViewHome:
		return "Home"
	case ViewPopular:
		return "Popular"
	case ViewAiringNow:
		return "Airing Now"
	case ViewFavorites:
		return "My Favorites"
	case ViewSearch:
		return "Search"
	case ViewDetails:
		return "Details"
	default:
		return string(v)
	}
}

// TabIndex returns the position of v in the tab bar, or -1
func (v ViewID) TabIndex() int {
	for i, tab := range TabViews {
		if tab == v {
			return i
		}
	}
	return -1
}

// Movie is the summary shown on a card
type Movie struct {
	ID     int     `yaml:"id" toml:"id"`
	Title  string  `yaml:"title" toml:"title"`
	Year   int     `yaml:"year" toml:"year"`
	Rating float64 `yaml:"rating" toml:"rating"`
}

// CastMember is one credited actor
type CastMember struct {
	Name      string `yaml:"name"`
	Character string `yaml:"character"`
}

// MovieDetails is everything the details page shows
type MovieDetails struct {
	Movie           `yaml:",inline"`
	Runtime         int          `yaml:"runtime"`
	Genres          []string     `yaml:"genres"`
	Overview        string       `yaml:"overview"`
	Director        string       `yaml:"director"`
	Cast            []CastMember `yaml:"cast"`
	Recommendations []int        `yaml:"recommendations"`
}
