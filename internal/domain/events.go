package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventViewChanged     EventType = "ViewChanged"
	EventMovieOpened     EventType = "MovieOpened"
	EventFavoriteToggled EventType = "FavoriteToggled"
	EventPageLoaded      EventType = "PageLoaded"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ViewChangedEvent is emitted when the content under the tab bar changes
type ViewChangedEvent struct {
	From ViewID
	To   ViewID
}

func (e ViewChangedEvent) Type() EventType { return EventViewChanged }

// MovieOpenedEvent is emitted when a details page is opened
type MovieOpenedEvent struct {
	MovieID int
}

func (e MovieOpenedEvent) Type() EventType { return EventMovieOpened }

// FavoriteToggledEvent is emitted after a favorite was added or removed
type FavoriteToggledEvent struct {
	Movie    Movie
	Favorite bool
}

func (e FavoriteToggledEvent) Type() EventType { return EventFavoriteToggled }

// PageLoadedEvent is emitted when a list page arrives from the catalog
type PageLoadedEvent struct {
	View       ViewID
	Page       int
	TotalPages int
	Count      int
}

func (e PageLoadedEvent) Type() EventType { return EventPageLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
