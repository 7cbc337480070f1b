package models

// Mask is a catalog-wide mask product identified by its unique name.
type Mask struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:text;not null;uniqueIndex"`
}
