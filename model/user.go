package model

import "time"

type User struct {
	UserID      int32     `json:"id" gorm:"primaryKey;column:user_id"`
	FirstName   string    `json:"first_name" gorm:"column:first_name;type:varchar(100)"`
	Surname     string    `json:"surname" gorm:"column:surname;type:varchar(100)"`
	Email       string    `json:"email" gorm:"column:email;type:varchar(255)"`
	Role        string    `json:"role" gorm:"column:role;type:varchar(50)"` // employee, director, admin
	StructureID int32     `json:"structure_id" gorm:"column:structure_id"`
	WeeklyHours float64   `json:"weekly_hours" gorm:"column:weekly_hours;type:decimal(5,2)"`
	CreatedAt   time.Time `json:"-" gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create"`

	Structure Structure `json:"-" gorm:"foreignKey:StructureID;references:StructureID"`
}

func (User) TableName() string {
	return "users"
}
