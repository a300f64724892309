package models

const (
	CategoryVerified   = "Verified"
	CategoryFakeNews   = "Fake News"
	CategoryUnverified = "Unverified"
)

// Article is a published news item subject to community fact-checking.
// UpVotes, DownVotes and CommentsCount are denormalized tallies over the
// visible votes of the article; Date is kept as free text.
type Article struct {
	ID              uint   `json:"id" gorm:"primarykey"`
	Title           string `json:"title" gorm:"not null"`
	Category        string `json:"category"`
	Description     string `json:"description" gorm:"type:text"`
	FullDescription string `json:"full_description" gorm:"type:text"`
	Author          string `json:"author"`
	Date            string `json:"date"`
	Image           string `json:"image"`
	UpVotes         int    `json:"up_votes" gorm:"not null;default:0"`
	DownVotes       int    `json:"down_votes" gorm:"not null;default:0"`
	CommentsCount   int    `json:"comments_count" gorm:"not null;default:0"`
	Visible         bool   `json:"visible" gorm:"not null"`
}
