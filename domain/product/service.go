package product

import "math"

// IncreasePrice returns copies of products with every price raised by
// percentage percent, rounded to cents. products is left untouched, also
// when a new price is rejected.
func IncreasePrice(products []Product, percentage float64) ([]Product, error) {
	increased := make([]Product, len(products))
	copy(increased, products)

	for i := range increased {
		price := math.Round(increased[i].Price*(1+percentage/100)*100) / 100
		if err := increased[i].ChangePrice(price); err != nil {
			return nil, err
		}
	}

	return increased, nil
}
