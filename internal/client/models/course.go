package models

// Course groups uploads under the university hosting it. Immutable from the
// client's perspective except via the moderator-only create operation.
type Course struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	HeldAt string `json:"held_at"`
}

// University is used for display and course association only.
type University struct {
	ID          string   `json:"id"`
	FullName    string   `json:"full_name"`
	MidName     string   `json:"mid_name"`
	ShortName   string   `json:"short_name"`
	DomainNames []string `json:"domain_names"`
}

// Prof is an optional instructor reference attached to uploads.
type Prof struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
