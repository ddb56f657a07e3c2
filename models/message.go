package models

import "time"

// APIMessage is one audited mutating request, written by the audit
// middleware.
type APIMessage struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	MessageTime int64     `gorm:"column:message_time;not null" json:"message_time"`
	HTTPMethod  string    `gorm:"column:http_method" json:"http_method"`
	RawEndpoint string    `gorm:"column:raw_endpoint" json:"raw_endpoint"`
	HTTPBody    string    `gorm:"column:http_body;type:text" json:"http_body"`
	CreatedAt   time.Time `gorm:"column:created_at;default:current_timestamp" json:"created_at"`
}

func (APIMessage) TableName() string {
	return "api_messages"
}
