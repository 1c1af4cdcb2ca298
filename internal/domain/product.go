package domain

type Product struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Brand       string            `json:"brand"`
	Category    string            `json:"category"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	SalePrice   *float64          `json:"sale_price,omitempty"`
	MainImage   string            `json:"main_image,omitempty"`
	Images      []string          `json:"images,omitempty"`
	Specs       map[string]string `json:"specs,omitempty"`
	Rating      float64           `json:"rating,omitempty"`
	Stock       int               `json:"stock,omitempty"`
	OnSale      bool              `json:"on_sale"`
	Featured    bool              `json:"featured"`
	Recommended bool              `json:"recommended"`
}

// EffectivePrice is the price a shopper actually pays: the sale price when the
// product is marked on sale and one is set, the base price otherwise. A sale
// price of 0 is legal, which is why SalePrice is a pointer and not a float
// compared against zero.
func EffectivePrice(p Product) float64 {
	if p.OnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
