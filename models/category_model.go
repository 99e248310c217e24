package models

// Category is the top level of the requestable-resource catalog.
// FormType selects which question-set variant the frontend renders
// for plans requesting this category.
// Referenced categories are soft-deactivated via Active, never hard-deleted,
// so plan foreign keys keep resolving.
type Category struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Value    string `gorm:"column:value;uniqueIndex;size:100;not null" json:"value"`
	Label    string `gorm:"column:label;size:255;not null" json:"label"`
	FormType string `gorm:"column:form_type;size:50;not null;default:default" json:"formType"`
	Order    int    `gorm:"column:order;not null;default:0" json:"order"`
	Active   bool   `gorm:"column:active;not null;default:true" json:"active"`

	Items []Item `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

// TableName overrides GORM's default pluralization.
func (Category) TableName() string {
	return "categories"
}
