package domain

// Lead is the canonical representation of a lead inside this service.
// Every provider maps into this model; the JSON tags are the snapshot schema.
type Lead struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Name    string `json:"name"`
	Source  Source `json:"source"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Date    string `json:"date"` // upstream format, never parsed
	Address string `json:"address"`
	JobType string `json:"jobType"`

	Windows int     `json:"windows"`
	Stories int     `json:"stories"`
	Value   float64 `json:"value"`
	Invoice float64 `json:"invoice"`

	Duration   string `json:"duration"`
	Transcript string `json:"transcript"`
	FollowUp   string `json:"followUp"`
	JobDate    string `json:"jobDate"`
	Details    string `json:"details"`

	Status   Status      `json:"status"`
	Progress int         `json:"progress"`
	Starred  bool        `json:"starred"`
	Notes    string      `json:"notes"`
	HasCall  bool        `json:"hasCall"`
	LP       LandingPage `json:"lp"`
}
