package catalog

// MenuItem is the record exchanged with the external catalog API.
// Only ITEM and CATEGORY are guaranteed to be present. Nutrition values
// arrive as numeric strings and stay strings end to end; a nil pointer
// means the upstream record has no value for that column.
type MenuItem struct {
	ID       string `json:"id,omitempty"`
	Item     string `json:"ITEM"`
	Category string `json:"CATEGORY"`

	Calories     *string `json:"CAL,omitempty"`
	TotalFat     *string `json:"FAT,omitempty"`
	SaturatedFat *string `json:"SFAT,omitempty"`
	TransFat     *string `json:"TFAT,omitempty"`
	Cholesterol  *string `json:"CHOL,omitempty"`
	Sodium       *string `json:"SALT,omitempty"`
	Carbs        *string `json:"CARB,omitempty"`
	Fiber        *string `json:"FBR,omitempty"`
	Sugars       *string `json:"SGR,omitempty"`
	Protein      *string `json:"PRO,omitempty"`
}

// IsNew reports whether the item has not been persisted upstream yet.
// The save flow routes create vs update on this.
func (m MenuItem) IsNew() bool {
	return m.ID == ""
}

// Nutrient returns the value for one of the upstream nutrition columns
// (CAL, FAT, SFAT, TFAT, CHOL, SALT, CARB, FBR, SGR, PRO). The second
// return is false when the column is absent on this record.
func (m MenuItem) Nutrient(key string) (string, bool) {
	var v *string
	switch key {
	case "CAL":
		v = m.Calories
	case "FAT":
		v = m.TotalFat
	case "SFAT":
		v = m.SaturatedFat
	case "TFAT":
		v = m.TransFat
	case "CHOL":
		v = m.Cholesterol
	case "SALT":
		v = m.Sodium
	case "CARB":
		v = m.Carbs
	case "FBR":
		v = m.Fiber
	case "SGR":
		v = m.Sugars
	case "PRO":
		v = m.Protein
	}
	if v == nil {
		return "", false
	}
	return *v, true
}

// SetNutrient writes one nutrition column by its upstream key. Unknown
// keys are ignored so form schemas can evolve ahead of the model.
func (m *MenuItem) SetNutrient(key string, value *string) {
	switch key {
	case "CAL":
		m.Calories = value
	case "FAT":
		m.TotalFat = value
	case "SFAT":
		m.SaturatedFat = value
	case "TFAT":
		m.TransFat = value
	case "CHOL":
		m.Cholesterol = value
	case "SALT":
		m.Sodium = value
	case "CARB":
		m.Carbs = value
	case "FBR":
		m.Fiber = value
	case "SGR":
		m.Sugars = value
	case "PRO":
		m.Protein = value
	}
}
