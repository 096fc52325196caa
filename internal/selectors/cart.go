package selectors

// Cart page (/view_cart)
const (
	CartTable             = "#cart_info_table"
	CartItems             = ".cart_info tbody tr"
	CartProceedToCheckout = ".btn-default.check_out"
	CartRegisterLoginLink = `.modal-body a[href="/login"]`
	CartProductName       = ".cart_description h4 a"
	CartProductPrice      = ".cart_price p"
	CartProductQuantity   = ".cart_quantity button"
	CartTotalPrice        = ".cart_total_price"
	CartDeleteButton      = ".cart_quantity_delete"
	CartEmptyMessage      = "#empty_cart"
	CartViewCartLink      = `#cartModal u:has-text("View Cart")`
)
