package models

// Product is one entry of the catalog. JSON tags match the legacy
// productos.json file so existing data loads unchanged.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"nombre"`
	Price    int     `json:"precio"`
	Stock    int     `json:"stock"`
	Code     string  `json:"codigo"`
	Category string  `json:"categoria"`
	Weight   float64 `json:"peso"`
	Image    string  `json:"imagen"`
}

// Categories is the fixed set the store sells in.
var Categories = []string{"Cocina", "Baño", "Decoración", "Limpieza"}

func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
