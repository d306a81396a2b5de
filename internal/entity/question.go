package entity

import "time"

const SubjectAll = "all"

// Subjects is the fixed category list a question can belong to.
var Subjects = []string{
	"Frontend Development",
	"Backend Development",
	"Data Science",
	"Mobile Development",
	"DevOps",
}

type Author struct {
	ID         string `gorm:"size:50" json:"id"`
	Name       string `gorm:"size:100" json:"name"`
	Avatar     string `gorm:"type:text" json:"avatar"`
	Reputation int    `json:"reputation"`
}

type Question struct {
	ID         string    `gorm:"size:50;primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Content    string    `gorm:"type:text" json:"content"`
	Author     Author    `gorm:"embedded;embeddedPrefix:author_" json:"author"`
	Tags       []string  `gorm:"serializer:json" json:"tags"`
	Subject    string    `gorm:"size:100;index" json:"subject"`
	Votes      int       `json:"votes"`
	Answers    int       `json:"answers"`
	Views      int       `json:"views"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	IsAnswered bool      `json:"isAnswered"`
	IsHot      bool      `json:"isHot"`
	Position   int       `gorm:"index" json:"-"`
}

// HasAnyTag reports whether the question carries at least one of tags.
func (q Question) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range q.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

type Answer struct {
	ID         string `gorm:"size:50;primaryKey" json:"id"`
	QuestionID string `gorm:"size:50;index;not null" json:"questionId"`
	Content    string `gorm:"type:text" json:"content"`
	Votes      int    `json:"votes"`
	Author     string `gorm:"size:100" json:"author"`
	CreatedAt  string `gorm:"size:50" json:"createdAt"`
	Position   int    `gorm:"index" json:"-"`
}
