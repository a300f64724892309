package models

type RegisterRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
	Visible  *bool  `json:"visible,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type CreateArticleRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=255"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	FullDescription string `json:"full_description"`
	Author          string `json:"author"`
	Date            string `json:"date"`
	Image           string `json:"image"`
	Visible         *bool  `json:"visible,omitempty"`
}

type SubmitVoteRequest struct {
	ArticleID uint   `json:"news_id" validate:"required"`
	UserID    int    `json:"user_id"`
	Name      string `json:"name"`
	Vote      string `json:"vote" validate:"required"`
	Comment   string `json:"comment"`
	ImageURL  string `json:"image_url"`
}

// VoteVisibilityRequest carries the desired visibility and an optional
// caller-declared direction overriding the stored one when adjusting the
// article's counters.
type VoteVisibilityRequest struct {
	Visible *bool  `json:"is_visible" binding:"required"`
	Vote    string `json:"vote,omitempty"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// TallyResult is the counter state of an article after a recount or a
// visibility transition.
type TallyResult struct {
	CommentsCount int    `json:"commentsCount"`
	UpVotes       int    `json:"upVotes"`
	DownVotes     int    `json:"downVotes"`
	Category      string `json:"category"`
}

type ArticleStats struct {
	Total      int64 `json:"total"`
	Verified   int64 `json:"verified"`
	Fake       int64 `json:"fake"`
	Unverified int64 `json:"unverified"`
}
