package model

type Task struct {
	TaskID      int32  `json:"id" gorm:"primaryKey;column:task_id"`
	Name        string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	StructureID int32  `json:"structure_id" gorm:"column:structure_id"`

	Structure Structure `json:"-" gorm:"foreignKey:StructureID;references:StructureID"`
}

func (Task) TableName() string {
	return "tasks"
}
