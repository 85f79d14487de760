package models

import "time"

// Post is a blog entry owned by the user in UserID.
type Post struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userID"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnedBy reports whether userID is the post's owner.
func (p *Post) OwnedBy(userID string) bool {
	return userID != "" && p.UserID == userID
}
