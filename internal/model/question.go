package model

import "time"

// QuestionCategory classifies a question by topic.
type QuestionCategory string

const (
	CategoryJavascript QuestionCategory = "javascript"
	CategoryReact      QuestionCategory = "react"
	CategoryPython     QuestionCategory = "python"
	CategoryNodejs     QuestionCategory = "nodejs"
	CategoryCSS        QuestionCategory = "css"
	CategoryTypescript QuestionCategory = "typescript"
	CategoryDatabase   QuestionCategory = "database"
	CategoryAPI        QuestionCategory = "api"
	CategoryMobile     QuestionCategory = "mobile"
	CategoryOther      QuestionCategory = "other"
)

// DifficultyLevel classifies how hard a question is.
type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
)

// Question represents a forum question with its counters.
//
// Views and Votes are mutated with a plain read-modify-write; concurrent
// requests against the same question can lose an update.
type Question struct {
	ID              uint             `json:"id" gorm:"primaryKey"`
	Title           string           `json:"title" gorm:"size:255;not null"`
	Category        QuestionCategory `json:"category" gorm:"type:varchar(50);not null;default:'other';index"`
	DifficultyLevel DifficultyLevel  `json:"difficulty_level" gorm:"type:varchar(20);not null;default:'beginner'"`
	QuestionDetail  string           `json:"question_detail" gorm:"type:text;not null"`
	AuthorID        uint             `json:"-" gorm:"not null;index"`
	CreatedAt       time.Time        `json:"created_at"`
	Views           uint             `json:"views" gorm:"not null;default:0"`
	Votes           int              `json:"votes" gorm:"not null;default:0"`

	// Relations
	Tags   []Tag `json:"tags" gorm:"many2many:question_tags;"`
	Author User  `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`

	// Computed per fetch, not stored.
	AuthorName  string `json:"author" gorm:"-"`
	AnswerCount int64  `json:"answer_count" gorm:"-"`
}

// ValidCategory reports whether c is one of the fixed category values.
func ValidCategory(c QuestionCategory) bool {
	switch c {
	case CategoryJavascript, CategoryReact, CategoryPython, CategoryNodejs,
		CategoryCSS, CategoryTypescript, CategoryDatabase, CategoryAPI,
		CategoryMobile, CategoryOther:
		return true
	}
	return false
}

// ValidDifficulty reports whether d is one of the fixed difficulty values.
func ValidDifficulty(d DifficultyLevel) bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}
