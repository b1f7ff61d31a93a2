package models

// Product is a single catalog record. JSON keys match the data file format
// ("product_name" etc.); the Mongo source uses the same keys.
type Product struct {
	Name        string  `json:"product_name" bson:"product_name" validate:"required"`
	Price       float64 `json:"price" bson:"price" validate:"gte=0"`
	Category    string  `json:"category" bson:"category" validate:"required"`
	Description string  `json:"description" bson:"description"`
	Rating      float64 `json:"rating" bson:"rating" validate:"gte=0,lte=5"`
}

// CombinedText is the text a product contributes to TF-IDF.
func (p Product) CombinedText() string {
	return p.Name + " " + p.Description + " " + p.Category
}
