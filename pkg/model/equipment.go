package model

// Equipment is one reservable machine in the workshop catalog.
// Color is a presentation hint for the calendar and has no behavioral effect.
type Equipment struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
