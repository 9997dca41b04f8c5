package model

// Product is one entry of the mock store catalog. Price is in whole currency
// units; Description is Markdown.
type Product struct {
	Name        string
	Price       int
	Description string
}
