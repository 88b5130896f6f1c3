// internal/model/models.go
package model

// Project represents a GitLab project the user contributes to.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Event is one entry from the GitLab project events API. Only the fields
// the classifier needs are decoded; the rest of the payload is ignored.
type Event struct {
	ActionName string `json:"action_name"`
	CreatedAt  string `json:"created_at"`
	Author     struct {
		Username string `json:"username"`
	} `json:"author"`
	TargetType  string `json:"target_type"`
	TargetIID   int64  `json:"target_iid"`
	TargetTitle string `json:"target_title"`
	PushData    struct {
		Ref string `json:"ref"`
	} `json:"push_data"`
}

// Day returns the event's calendar day as "YYYY-MM-DD".
// GitLab timestamps are RFC3339, so the date is a plain prefix.
func (e Event) Day() string {
	if len(e.CreatedAt) < 10 {
		return e.CreatedAt
	}
	return e.CreatedAt[:10]
}

// Row is one line of the generated timesheet. A day without reportable
// activity keeps its Date but leaves every other field blank.
type Row struct {
	Surname string
	Name    string
	Date    string
	Hours   string
	Note    string
}
