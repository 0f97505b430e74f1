package models

// Post is a feed entry. IDs are generated client-side at submission time and
// Timestamp is seconds since epoch. The author is embedded by value.
type Post struct {
	ID          string `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description,omitempty"`
	PhotoURL    string `gorm:"column:photo_url" json:"photoUrl"`
	Timestamp   int64  `gorm:"index" json:"timestamp"`
	Author      Author `gorm:"embedded;embeddedPrefix:author_" json:"author"`
}
