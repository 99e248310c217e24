package models

// Item is a requestable resource inside a Category. Value is unique per
// category, not globally, so item resolution must always be scoped by
// the owning category.
type Item struct {
	ID         uint   `gorm:"primaryKey;column:id" json:"id"`
	CategoryID uint   `gorm:"column:category_id;uniqueIndex:idx_items_category_value;not null" json:"categoryId"`
	Value      string `gorm:"column:value;uniqueIndex:idx_items_category_value;size:100;not null" json:"value"`
	Label      string `gorm:"column:label;size:255;not null" json:"label"`
	Order      int    `gorm:"column:order;not null;default:0" json:"order"`
	Active     bool   `gorm:"column:active;not null;default:true" json:"active"`
}

// TableName overrides GORM's default pluralization.
func (Item) TableName() string {
	return "items"
}
