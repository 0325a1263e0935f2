package booking

// SessionPricing describes one bookable interview field.
type SessionPricing struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// pricing is keyed by field tag; prices are in rupees.
var pricingMap = map[string]SessionPricing{
	"DSA": {
		ID:          "DSA",
		Name:        "Data Structures & Algorithms",
		Price:       999,
		Description: "Comprehensive DSA interview preparation",
	},
	"Data Science": {
		ID:          "Data Science",
		Name:        "Data Science",
		Price:       1299,
		Description: "Data Science and ML interview preparation",
	},
	"Analytics": {
		ID:          "Analytics",
		Name:        "Data Analytics",
		Price:       899,
		Description: "Data Analytics interview preparation",
	},
	"System Design": {
		ID:          "System Design",
		Name:        "System Design",
		Price:       1499,
		Description: "System Design interview preparation",
	},
	"Behavioral": {
		ID:          "Behavioral",
		Name:        "Behavioral Interview",
		Price:       599,
		Description: "Behavioral and soft skills interview preparation",
	},
}

// GetPricingMap returns the static pricing table for all fields.
func GetPricingMap() map[string]SessionPricing {
	return pricingMap
}

// GetSessionPrice returns the price for a field, defaulting to the DSA
// price for unknown fields.
func GetSessionPrice(field string) float64 {
	if p, ok := pricingMap[field]; ok {
		return p.Price
	}
	return 999
}

// IsKnownField reports whether the field tag is a bookable interview type.
func IsKnownField(field string) bool {
	_, ok := pricingMap[field]
	return ok
}
