package models

// CommunityType is an independent lookup list of community kinds a
// proponent can declare. Not tied to categories.
type CommunityType struct {
	ID     uint   `gorm:"primaryKey;column:id" json:"id"`
	Value  string `gorm:"column:value;uniqueIndex;size:100;not null" json:"value"`
	Label  string `gorm:"column:label;size:255;not null" json:"label"`
	Order  int    `gorm:"column:order;not null;default:0" json:"order"`
	Active bool   `gorm:"column:active;not null;default:true" json:"active"`
}

// TableName overrides GORM's default pluralization.
func (CommunityType) TableName() string {
	return "community_types"
}
