package models

type Product struct {
	ID       int      `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Price    float64  `json:"price" yaml:"price"`
	Unit     string   `json:"unit" yaml:"unit"`
	Image    string   `json:"image" yaml:"image"`
	Farmer   string   `json:"farmer" yaml:"farmer"`
	Location string   `json:"location" yaml:"location"`
	Category Category `json:"category" yaml:"category"`
}

type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// LineTotal is the unrounded price * quantity of the line.
func (l CartLine) LineTotal() float64 {
	return l.Price * float64(l.Quantity)
}
