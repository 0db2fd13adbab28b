package models

import "time"

// Post is a feed entry. Name and Avatar are snapshots of the author at
// creation time so the feed renders without joining users.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"likes"`
	CreatedAt time.Time `json:"date"`
}

// Like marks a user's like on a post. The handlers scan the post's like list
// before inserting; the unique index backs that check up at the store level.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"-"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_post_user_like" json:"user"`
	CreatedAt time.Time `json:"-"`
}
