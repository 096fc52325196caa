package selectors

// Products listing and product detail pages
const (
	ProductsList              = ".features_items"
	ProductsPageTitle         = ".features_items h2.title"
	ProductsSearchInput       = "#search_product"
	ProductsSearchButton      = "#submit_search"
	ProductCard               = ".single-products"
	ProductAddToCart          = ".add-to-cart"
	ProductViewLink           = `.choose a[href^="/product_details/"]`
	ProductContinueShopping   = ".modal-footer button"
	ProductCartModal          = "#cartModal"
	ProductInformation        = ".product-information"
	ProductDetailName         = ".product-information h2"
	ProductDetailCategory     = `.product-information p:has-text("Category:")`
	ProductDetailPrice        = ".product-information span span"
	ProductDetailAvailability = `.product-information p:has-text("Availability:")`
	ProductDetailCondition    = `.product-information p:has-text("Condition:")`
	ProductDetailBrand        = `.product-information p:has-text("Brand:")`
)
