package responses

import "time"

type EventTypeDTO struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Color    string `json:"color,omitempty"`
}

// EventDTO is the calendar projection; Start/End are UTC ISO 8601 strings.
type EventDTO struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Timezone    string  `json:"timezone"`
	AllDay      bool    `json:"all_day"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	TypeID      *uint   `json:"type_id"`

	MasonsOnly     bool   `json:"masons_only"`
	OpenTo         string `json:"open_to"`
	DegreeRequired string `json:"degree_required"`
	IsPublic       bool   `json:"is_public"`

	Repeats bool    `json:"repeats"`
	RRule   *string `json:"rrule"`

	Type    *EventTypeDTO `json:"type,omitempty"`
	CanEdit bool          `json:"can_edit"`
}

type NewsletterDTO struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Issue     *string   `json:"issue"`
	Summary   *string   `json:"summary"`
	Body      string    `json:"body,omitempty"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsletterPage struct {
	Newsletters []NewsletterDTO `json:"newsletters"`
	Total       int             `json:"total"`
	Page        int             `json:"page"`
	PerPage     int             `json:"per_page"`
}

type TileDTO struct {
	ID       uint                   `json:"id"`
	Page     string                 `json:"page"`
	Type     string                 `json:"type"`
	Slug     string                 `json:"slug"`
	Title    *string                `json:"title"`
	Config   map[string]interface{} `json:"config"`
	ColStart int                    `json:"col_start"`
	RowStart int                    `json:"row_start"`
	ColSpan  int                    `json:"col_span"`
	RowSpan  int                    `json:"row_span"`
	Sort     int                    `json:"sort"`
	Enabled  bool                   `json:"enabled"`
}

type QuestionDTO struct {
	ID         uint    `json:"id"`
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   string  `json:"category"`
	Difficulty int     `json:"difficulty"`
	Reference  *string `json:"reference"`
}

// BoardResponse maps each selected category to its column of questions,
// already ordered by ascending difficulty.
type BoardResponse struct {
	Board map[string][]QuestionDTO `json:"board"`
}

type PastMasterDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}
