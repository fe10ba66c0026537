package model

// Structure is a site (e.g. one leisure center). Its timezone is applied to
// every timestamp before day bucketing, so a structure's reports are stable
// regardless of where the server runs.
type Structure struct {
	StructureID int32  `json:"id" gorm:"primaryKey;column:structure_id"`
	Name        string `json:"name" gorm:"column:name;type:varchar(255);not null"`
	City        string `json:"city" gorm:"column:city;type:varchar(100)"`
	Timezone    string `json:"timezone" gorm:"column:timezone;type:varchar(64);not null;default:'Europe/Paris'"`
}

func (Structure) TableName() string {
	return "structures"
}
