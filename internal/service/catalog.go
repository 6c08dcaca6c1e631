package service

// CatalogProduct is an entry of the compiled-in product catalog. SkinTypes
// and Concerns are optional; a product without them simply earns no match
// bonus for that axis.
type CatalogProduct struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`  // EUR
	Rating      float64  `json:"rating"` // 0–5 scale
	SkinTypes   []string `json:"skin_types,omitempty"`
	Concerns    []string `json:"concerns,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CatalogCategory holds an ordered product list; catalog order is the
// tie-break for equal scores.
type CatalogCategory struct {
	Label    string
	Products []CatalogProduct
}

// productCatalog is immutable configuration data. Scoring lives in
// recommend.go so the algorithm stays testable independently of the content.
var productCatalog = []CatalogCategory{
	{
		Label: "Nettoyants",
		Products: []CatalogProduct{
			{Name: "CeraVe Gel Moussant", Price: 12.90, Rating: 4.6, SkinTypes: []string{"normale", "mixte", "grasse"}},
			{Name: "La Roche-Posay Toleriane", Price: 15.50, Rating: 4.7, SkinTypes: []string{"sensible", "sèche"}},
		},
	},
	{
		Label: "Serums",
		Products: []CatalogProduct{
			{Name: "The Ordinary Niacinamide 10%", Price: 7.50, Rating: 4.4, Concerns: []string{"acné", "pores dilatés"}},
			{Name: "Vichy Mineral 89", Price: 24.90, Rating: 4.5, Concerns: []string{"sécheresse", "sensibilité"}},
		},
	},
	{
		Label: "Hydratants",
		Products: []CatalogProduct{
			{Name: "Cetaphil Daily Moisturizer", Price: 11.90, Rating: 4.4, SkinTypes: []string{"normale", "sèche"}},
			{Name: "Effaclar Mat La Roche-Posay", Price: 16.90, Rating: 4.3, SkinTypes: []string{"grasse", "mixte"}},
		},
	},
}

// wellnessProduct is appended outside catalog scoring when stress is high.
var wellnessProduct = CatalogProduct{
	Name:        "Masque Apaisant Avène",
	Price:       13.90,
	Rating:      4.5,
	Description: "Masque anti-stress pour peaux sensibilisées.",
}
