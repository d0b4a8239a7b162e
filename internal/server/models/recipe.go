package models

// Recipe is a submitted recipe. Author is the username from the token that
// submitted it.
type Recipe struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Author   string `json:"author"`
}
