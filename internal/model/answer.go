package model

import "time"

// Answer represents a reply to a question. It lives and dies with its parent
// question and its author (cascade on both).
type Answer struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	QuestionID uint      `json:"question" gorm:"not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	AuthorID   uint      `json:"-" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Question Question `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	Author   User     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}
