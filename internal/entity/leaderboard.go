package entity

type LeaderboardUser struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Questions int    `json:"questions"`
	Answers   int    `json:"answers"`
	Score     int    `gorm:"index" json:"score"`
}
