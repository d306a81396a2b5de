package entity

// User is the mock session record kept under the client's "user" key.
type User struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Avatar     string `json:"avatar,omitempty"`
	Reputation int    `json:"reputation"`
}
