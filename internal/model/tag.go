package model

// Tag is a named label attachable to many questions.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`
}
