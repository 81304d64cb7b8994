package requests

// EventUpsertRequest covers both create and update of calendar events.
// Start/End are RFC 3339 timestamps; their normalization happens in the
// event service, not here.
type EventUpsertRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Location    *string `json:"location,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`

	AllDay bool    `json:"all_day"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
	TypeID *uint   `json:"type_id,omitempty"`

	MasonsOnly     bool   `json:"masons_only"`
	OpenTo         string `json:"open_to,omitempty"`
	DegreeRequired string `json:"degree_required,omitempty"`
	IsPublic       *bool  `json:"is_public,omitempty"`

	Repeats bool    `json:"repeats"`
	RRule   *string `json:"rrule,omitempty"`
}

type NewsletterUpsertRequest struct {
	Title    string  `json:"title"`
	Issue    *string `json:"issue,omitempty"`
	Summary  *string `json:"summary,omitempty"`
	Body     string  `json:"body"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

type TileUpsertRequest struct {
	Page    string                 `json:"page,omitempty"`
	Type    string                 `json:"type"`
	Slug    string                 `json:"slug,omitempty"`
	Title   *string                `json:"title,omitempty"`
	Enabled *bool                  `json:"enabled,omitempty"`
	Sort    *int                   `json:"sort,omitempty"`

	ColStart *int `json:"col_start,omitempty"`
	RowStart *int `json:"row_start,omitempty"`
	ColSpan  *int `json:"col_span,omitempty"`
	RowSpan  *int `json:"row_span,omitempty"`

	Config map[string]interface{} `json:"config,omitempty"`
}

// TilePosition is one entry of the reorder payload.
type TilePosition struct {
	ID       uint `json:"id"`
	Sort     int  `json:"sort"`
	ColStart int  `json:"col_start"`
	RowStart int  `json:"row_start"`
	ColSpan  int  `json:"col_span"`
	RowSpan  int  `json:"row_span"`
}

type TileReorderRequest struct {
	Tiles []TilePosition `json:"tiles"`
}

type QuestionUpsertRequest struct {
	Question   string  `json:"question"`
	Answer     string  `json:"answer"`
	Category   string  `json:"category"`
	Difficulty int     `json:"difficulty"`
	Reference  *string `json:"reference,omitempty"`
}
