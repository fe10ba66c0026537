package model

import "time"

// TimeEntry is the raw clock event as stored. The wire format is shared with
// the tracking clients: tracking_type is one of arrival, break_start,
// break_end, departure; date_time is an ISO timestamp string.
type TimeEntry struct {
	ID           string `json:"id" gorm:"primaryKey;column:id"`
	UserID       int32  `json:"user_id" gorm:"column:user_id;not null;index:idx_user_date"`
	TrackingType string `json:"tracking_type" gorm:"column:tracking_type;type:varchar(20);not null"`
	DateTime     string `json:"date_time" gorm:"column:date_time;type:varchar(40);not null"`
	TaskID       *int32 `json:"task_id" gorm:"column:task_id;null"`

	CreatedAt time.Time `json:"-" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`
	UpdatedAt time.Time `json:"-" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}
