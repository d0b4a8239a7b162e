// Package models defines the data the CLI receives from the server.
package models

import "fmt"

// Recipe is a recipe as returned by the server's JSON API.
type Recipe struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Calories int    `json:"calories"`
	Author   string `json:"author"`
}

func (r Recipe) String() string {
	return fmt.Sprintf("%-30s %6d kcal  by %s", r.Name, r.Calories, r.Author)
}
