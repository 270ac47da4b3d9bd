package model

// Item is the domain model for a grocery entry.
// IDs are assigned by the list controller and never reused within a session.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Purchased bool   `json:"purchased"`
}
