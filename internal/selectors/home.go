package selectors

// Home page
const (
	HomeSlider           = "#slider"
	HomeFeaturesItems    = ".features_items"
	HomeCategoryProducts = ".category-products"
)
