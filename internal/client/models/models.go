// Package models holds the client-side data types.
package models

import "time"

// User is the public projection the server returns.
type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Session is what the client keeps after a successful login.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Analysis is the server's answer to a submitted idea.
type Analysis struct {
	IdeaSummary    string   `json:"ideaSummary"`
	ViabilityScore float64  `json:"viabilityScore"`
	SuggestedSteps []string `json:"suggestedSteps"`
}

// Task categories of the launch roadmap.
const (
	CategoryLegal     = "legal"
	CategoryFinance   = "finance"
	CategoryMarketing = "marketing"
	CategoryLaunch    = "launch"
)

var Categories = []string{CategoryLegal, CategoryFinance, CategoryMarketing, CategoryLaunch}

// ValidCategory reports whether c is one of Categories.
func ValidCategory(c string) bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// Task is one roadmap item.
type Task struct {
	ID          int64
	Category    string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
}

// Progress summarises completion of a task list.
type Progress struct {
	Completed int
	Total     int
}

// Percent is the rounded completion percentage; an empty list is 0%.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return (p.Completed*100 + p.Total/2) / p.Total
}

func ProgressOf(tasks []Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	return p
}
