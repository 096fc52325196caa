package pages

import (
	"fmt"

	"github.com/automationexercise/storefront-e2e/internal/models"
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// Listing headings
const (
	AllProductsTitle      = "All Products"
	SearchedProductsTitle = "Searched Products"
)

// ProductDetail is the information block of /product_details/{id}
type ProductDetail struct {
	Name         string
	Category     string
	Price        string
	Availability string
	Condition    string
	Brand        string
}

// ProductsPage is /products and the product detail page
type ProductsPage struct{ page }

// SearchProduct types term into the search box and submits
func (p *ProductsPage) SearchProduct(term string) error {
	if term == "" {
		return fmt.Errorf("%w: search term", models.ErrMissingField)
	}
	return each(
		func() error { return p.driver.Fill(sel.ProductsSearchInput, term) },
		func() error { return p.driver.Click(sel.ProductsSearchButton) },
	)
}

// ProductCount returns how many product cards are listed
func (p *ProductsPage) ProductCount() (int, error) {
	return p.driver.Count(sel.ProductCard)
}

// AddProductToCartByIndex clicks the add button of the index-th card, which
// sits under a hover overlay.
func (p *ProductsPage) AddProductToCartByIndex(index int) error {
	return p.driver.ForceClickWithin(sel.ProductCard, index, sel.ProductAddToCart)
}

// ClickContinueShopping closes the added-to-cart modal
func (p *ProductsPage) ClickContinueShopping() error {
	if err := p.expectVisible(sel.ProductCartModal); err != nil {
		return err
	}
	return p.driver.Click(sel.ProductContinueShopping)
}

// ViewProductByIndex opens the detail page of the index-th listed product.
// Listing order follows product ids, so it loads /product_details/{index+1}
// directly rather than clicking through ad overlays.
func (p *ProductsPage) ViewProductByIndex(index int) error {
	if index < 0 {
		return fmt.Errorf("%w: product index %d", models.ErrInvalidField, index)
	}
	return p.driver.Navigate(fmt.Sprintf("/product_details/%d", index+1))
}

// VerifyProductsPageLoaded waits for /products and the product grid
func (p *ProductsPage) VerifyProductsPageLoaded() error {
	return each(
		func() error { return p.expectVisible(sel.ProductsList) },
		func() error { return p.expectURL("/products") },
	)
}

// VerifyAllProductsTitle waits for the "All Products" heading
func (p *ProductsPage) VerifyAllProductsTitle() error {
	return p.expectText(sel.ProductsPageTitle, AllProductsTitle)
}

// VerifyProductsListVisible waits for at least one product card
func (p *ProductsPage) VerifyProductsListVisible() error {
	return each(
		func() error { return p.expectVisible(sel.ProductsList) },
		func() error { return p.expectCount(sel.ProductCard, 1) },
	)
}

// VerifySearchedProductsTitle waits for the "Searched Products" heading
func (p *ProductsPage) VerifySearchedProductsTitle() error {
	return p.expectText(sel.ProductsPageTitle, SearchedProductsTitle)
}

// VerifyProductDetailPageLoaded waits for a /product_details/ page
func (p *ProductsPage) VerifyProductDetailPageLoaded() error {
	return each(
		func() error { return p.expectURL("/product_details/") },
		func() error { return p.expectVisible(sel.ProductInformation) },
	)
}

// VerifyProductDetailsVisible waits for name, category, price,
// availability, condition and brand. The labelled lines must carry their
// label.
func (p *ProductsPage) VerifyProductDetailsVisible() error {
	return each(
		func() error { return p.expectVisible(sel.ProductDetailName) },
		func() error { return p.expectText(sel.ProductDetailCategory, "Category:") },
		func() error { return p.expectVisible(sel.ProductDetailPrice) },
		func() error { return p.expectText(sel.ProductDetailAvailability, "Availability:") },
		func() error { return p.expectText(sel.ProductDetailCondition, "Condition:") },
		func() error { return p.expectText(sel.ProductDetailBrand, "Brand:") },
	)
}

// ProductDetails reads the detail block. The name must not be empty.
func (p *ProductsPage) ProductDetails() (ProductDetail, error) {
	var d ProductDetail
	fields := []struct {
		selector string
		dst      *string
	}{
		{sel.ProductDetailName, &d.Name},
		{sel.ProductDetailCategory, &d.Category},
		{sel.ProductDetailPrice, &d.Price},
		{sel.ProductDetailAvailability, &d.Availability},
		{sel.ProductDetailCondition, &d.Condition},
		{sel.ProductDetailBrand, &d.Brand},
	}
	for _, f := range fields {
		text, err := p.driver.Text(f.selector)
		if err != nil {
			return ProductDetail{}, err
		}
		*f.dst = normalize(text)
	}

	if d.Name == "" {
		return d, &AssertionError{Selector: sel.ProductDetailName, Want: "non-empty product name"}
	}
	return d, nil
}

// VerifySearchResults waits for the searched-products heading and at least
// one result card.
func (p *ProductsPage) VerifySearchResults(term string) error {
	if term == "" {
		return fmt.Errorf("%w: search term", models.ErrMissingField)
	}
	return each(
		p.VerifySearchedProductsTitle,
		func() error { return p.expectCount(sel.ProductCard, 1) },
	)
}
