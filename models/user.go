package models

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
	RoleReader = "READER"
)

// User account. Visible=false deactivates the account: it stays in storage
// but can no longer authenticate.
type User struct {
	ID       uint   `json:"id" gorm:"primarykey"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email" gorm:"not null"`
	Password string `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"default:'READER'"`
	Visible  bool   `json:"visible" gorm:"not null"`
}
