package models

const (
	CategoryStarter = "starter"
	CategoryMain    = "main"
	CategoryDessert = "dessert"
	CategoryDrinks  = "drinks"
)

// Categories lists menu categories in display order.
var Categories = []string{CategoryStarter, CategoryMain, CategoryDessert, CategoryDrinks}

func IsCategory(value string) bool {
	for _, c := range Categories {
		if c == value {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID          int64  `json:"item_id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       Price  `json:"price"`
	IsAvailable bool   `json:"is_available"`
}
