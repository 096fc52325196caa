package selectors

// Checkout page (/checkout)
const (
	CheckoutAddressDelivery = "#address_delivery"
	CheckoutAddressInvoice  = "#address_invoice"

	CheckoutDeliveryName     = "#address_delivery .address_firstname"
	CheckoutDeliveryCompany  = "#address_delivery .address_address1.address_address2"
	CheckoutDeliveryAddress1 = "#address_delivery li.address_address1:nth-of-type(4)"
	CheckoutDeliveryAddress2 = "#address_delivery li.address_address1:nth-of-type(5)"
	CheckoutDeliveryCity     = "#address_delivery li.address_city"
	CheckoutDeliveryCountry  = "#address_delivery li.address_country_name"
	CheckoutDeliveryPhone    = "#address_delivery li.address_phone"

	CheckoutInvoiceName     = "#address_invoice .address_firstname"
	CheckoutInvoiceCompany  = "#address_invoice .address_address1.address_address2"
	CheckoutInvoiceAddress1 = "#address_invoice li.address_address1:nth-of-type(4)"
	CheckoutInvoiceAddress2 = "#address_invoice li.address_address1:nth-of-type(5)"
	CheckoutInvoiceCity     = "#address_invoice li.address_city"
	CheckoutInvoiceCountry  = "#address_invoice li.address_country_name"
	CheckoutInvoicePhone    = "#address_invoice li.address_phone"

	CheckoutOrderTable     = ".cart_info table, #cart_info_table, table.table"
	CheckoutOrderItems     = ".cart_info tbody tr, #cart_info tbody tr, table.table tbody tr"
	CheckoutProductName    = ".cart_description h4 a"
	CheckoutProductPrice   = ".cart_price p"
	CheckoutProductQty     = ".cart_quantity button"
	CheckoutTotalPrice     = ".cart_total_price"
	CheckoutComment        = `textarea[name="message"]`
	CheckoutPlaceOrder     = ".btn-default.check_out"
	CheckoutAddressHeader  = `.step-one h2.heading:has-text("Address Details")`
	CheckoutReviewHeader   = `.step-one h2.heading:has-text("Review Your Order")`
	CheckoutStepOneSection = ".step-one"
)
