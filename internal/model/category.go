package model

// Category groups quiz questions by subject. The table is read-only from the
// API's point of view; rows are seeded out of band (see cmd/seed).
type Category struct {
	Category    string `json:"category" gorm:"primaryKey;size:8"`
	Description string `json:"description" gorm:"size:50;not null"`
	Provider    string `json:"provider,omitempty" gorm:"size:16"`

	// Questions referencing this category block its deletion.
	Questions []Question `json:"-" gorm:"foreignKey:Category;references:Category;constraint:OnDelete:RESTRICT"`
}

// TableName keeps the short table name used by the existing schema.
func (Category) TableName() string {
	return "categories"
}
