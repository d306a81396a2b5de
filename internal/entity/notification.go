package entity

type NotificationType string

const (
	NotificationQuestion NotificationType = "question"
	NotificationAnswer   NotificationType = "answer"
	NotificationLike     NotificationType = "like"
	NotificationComment  NotificationType = "comment"
	NotificationSystem   NotificationType = "system"
	NotificationFollow   NotificationType = "follow"
)

// Notification is shared mock content. IsRead is not stored with it: it is
// filled in per client from that client's read marks.
type Notification struct {
	ID            string           `gorm:"size:50;primaryKey" json:"id"`
	Type          NotificationType `gorm:"size:20;not null" json:"type"`
	Title         string           `gorm:"size:255" json:"title"`
	Message       string           `gorm:"type:text" json:"message"`
	Timestamp     string           `gorm:"size:50" json:"timestamp"`
	IsRead        bool             `gorm:"-" json:"isRead"`
	ReadByDefault bool             `json:"-"`
	Link          string           `gorm:"size:255" json:"link,omitempty"`
	Avatar        string           `gorm:"type:text" json:"avatar,omitempty"`
	UserName      string           `gorm:"size:100" json:"userName,omitempty"`
	Position      int              `gorm:"index" json:"-"`
}
