package goal

// Goal is a named grouping of zero or more tasks.
type Goal struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Title string `gorm:"size:200;not null" json:"title"`
}

// TableName returns the table name for the Goal model.
func (Goal) TableName() string {
	return "goals"
}
