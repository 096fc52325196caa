package flows

import "fmt"

// AllProductsAndDetail is TC8: browse all products and open a detail page.
func AllProductsAndDetail(j *Journey) error {
	site := j.Site
	index := j.Fixtures.Products.DetailProductIndex

	if err := verifyHome(j); err != nil {
		return err
	}
	return j.sequence(
		step("Click on 'Products' button", site.Header.ClickProducts),
		step("Verify user is navigated to ALL PRODUCTS page", all(
			site.Products.VerifyProductsPageLoaded,
			site.Products.VerifyAllProductsTitle,
		)),
		step("The products list is visible", site.Products.VerifyProductsListVisible),
		step("Click on 'View Product' of the first product", func() error {
			return site.Products.ViewProductByIndex(index)
		}),
		step("User is landed to product detail page", site.Products.VerifyProductDetailPageLoaded),
		step("Verify that product name, category, price, availability, condition and brand are visible", func() error {
			if err := site.Products.VerifyProductDetailsVisible(); err != nil {
				return err
			}
			_, err := site.Products.ProductDetails()
			return err
		}),
	)
}

// SearchProduct is TC9: search by the first fixture term.
func SearchProduct(j *Journey) error {
	site := j.Site
	terms := j.Fixtures.Products.SearchTerms
	if len(terms) == 0 {
		return fmt.Errorf("no search terms in fixtures")
	}
	term := terms[0]

	if err := verifyHome(j); err != nil {
		return err
	}
	return j.sequence(
		step("Click on 'Products' button", site.Header.ClickProducts),
		step("Verify user is navigated to ALL PRODUCTS page", all(
			site.Products.VerifyProductsPageLoaded,
			site.Products.VerifyAllProductsTitle,
		)),
		step(fmt.Sprintf("Enter %q in search input and click search button", term), func() error {
			return site.Products.SearchProduct(term)
		}),
		step("Verify 'SEARCHED PRODUCTS' is visible", site.Products.VerifySearchedProductsTitle),
		step("Verify all the products related to search are visible", func() error {
			return site.Products.VerifySearchResults(term)
		}),
	)
}

// SubscriptionHome is TC10: subscribe to the newsletter from the home page footer.
func SubscriptionHome(j *Journey) error {
	site := j.Site
	email := j.Data.FakeEmail()

	if err := verifyHome(j); err != nil {
		return err
	}
	return j.sequence(
		step("Scroll down to footer", site.Footer.ScrollToFooter),
		step("Verify text 'SUBSCRIPTION'", site.Footer.VerifySubscriptionTitle),
		step("Enter email address in input and click arrow button", func() error {
			return site.Footer.SubscribeWithEmail(email)
		}),
		step("Verify success message 'You have been successfully subscribed!' is visible", site.Footer.VerifySubscriptionSuccess),
	)
}
