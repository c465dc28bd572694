package model

// Event is a company event employees can RSVP to.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // ISO date (yyyy-mm-dd); string compare == chronological
	Time        string `json:"time"`
	Location    string `json:"location"`
	Department  string `json:"department"`
	IsRequired  bool   `json:"isRequired"`
}
