package entity

// Categorías de producto admitidas.
var Categories = []string{
	"Electrónica",
	"Periféricos",
	"Mobiliario",
	"Accesorios",
	"Software",
	"Otros",
}

// ValidCategory reporta si c pertenece a Categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}
