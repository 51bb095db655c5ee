package ingredient

// Ingredient is catalog reference data. Names are not unique: two rows may
// share a name and unit.
type Ingredient struct {
	ID              int64  `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:128;not null;index" json:"name"`
	MeasurementUnit string `gorm:"size:64;not null" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
