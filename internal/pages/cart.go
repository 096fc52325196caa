package pages

import (
	sel "github.com/automationexercise/storefront-e2e/internal/selectors"
)

// CartPage is /view_cart and the added-to-cart modal
type CartPage struct{ page }

// CartItemCount returns the number of rows in the cart table
func (c *CartPage) CartItemCount() (int, error) {
	return c.driver.Count(sel.CartItems)
}

// VerifyCartPageLoaded waits for /view_cart
func (c *CartPage) VerifyCartPageLoaded() error {
	return c.expectURL("/view_cart")
}

// ClickProceedToCheckout clicks through from the cart to /checkout
func (c *CartPage) ClickProceedToCheckout() error {
	return each(
		func() error { return c.expectURL("/view_cart") },
		func() error { return c.expectVisible(sel.CartProceedToCheckout) },
		func() error { return c.driver.Click(sel.CartProceedToCheckout) },
		func() error { return c.expectURL("/checkout") },
	)
}

// RemoveProductByIndex clicks the delete cross of the index-th row
func (c *CartPage) RemoveProductByIndex(index int) error {
	return c.driver.ClickAt(sel.CartDeleteButton, index)
}

// ProductNameAt returns the name in the index-th row
func (c *CartPage) ProductNameAt(index int) (string, error) {
	return c.textAt(sel.CartProductName, index)
}

// ProductPriceAt returns the unit price in the index-th row
func (c *CartPage) ProductPriceAt(index int) (string, error) {
	return c.textAt(sel.CartProductPrice, index)
}

// ProductQuantityAt returns the quantity in the index-th row
func (c *CartPage) ProductQuantityAt(index int) (string, error) {
	return c.textAt(sel.CartProductQuantity, index)
}

func (c *CartPage) textAt(selector string, index int) (string, error) {
	text, err := c.driver.TextAt(selector, index)
	if err != nil {
		return "", err
	}
	return normalize(text), nil
}

// VerifyCartIsEmpty waits for the empty cart notice
func (c *CartPage) VerifyCartIsEmpty() error {
	return c.expectVisible(sel.CartEmptyMessage)
}

// ClickViewCart follows the "View Cart" link of the added-to-cart modal
func (c *CartPage) ClickViewCart() error {
	if err := c.expectVisible(sel.CartViewCartLink); err != nil {
		return err
	}
	return c.driver.Click(sel.CartViewCartLink)
}

// AddProductAndGoToCart adds the index-th product of the current listing
// and opens the cart from the confirmation modal.
func (c *CartPage) AddProductAndGoToCart(index int) error {
	return each(
		func() error { return c.driver.ScrollIntoView(sel.ProductCard, index) },
		func() error { return c.driver.Hover(sel.ProductCard, index) },
		func() error { return c.driver.ForceClickWithin(sel.ProductCard, index, sel.ProductAddToCart) },
		func() error { return c.expectVisible(sel.ProductCartModal) },
		c.ClickViewCart,
	)
}

// VerifyCartHasItems waits for at least one cart row
func (c *CartPage) VerifyCartHasItems() error {
	return c.expectCount(sel.CartItems, 1)
}
