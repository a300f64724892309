package models

import "time"

const (
	VoteUp   = "upvote"
	VoteDown = "downvote"
)

// Vote is a single user submission attached to an article: exactly one vote
// direction plus an optional comment body and image attachment. Hidden votes
// are excluded from tallies and listings but never deleted.
type Vote struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	Article   Article   `json:"-" gorm:"foreignKey:ArticleID"`
	UserID    int       `json:"user_id"`
	Name      string    `json:"name"`
	Vote      string    `json:"vote" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"type:text"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	Visible   bool      `json:"visible" gorm:"not null"`
}
