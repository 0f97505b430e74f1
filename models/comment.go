package models

// Comment belongs to a post via PostID. Timestamp is seconds since epoch.
// Nothing enforces the link locally; the backend is the source of truth for
// referential integrity.
type Comment struct {
	ID        string `gorm:"primaryKey" json:"id"`
	PostID    string `gorm:"index;not null" json:"postId"`
	Content   string `gorm:"not null" json:"content"`
	Timestamp int64  `gorm:"index" json:"timestamp"`
	Author    Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
}
