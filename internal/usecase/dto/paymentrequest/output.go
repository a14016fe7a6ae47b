package prdto

type PaymentRequestMetadata struct {
	Doctype          string `json:"doctype"`
	Docname          string `json:"docname"`
	ReferenceDoctype string `json:"reference_doctype"`
	ReferenceName    string `json:"reference_name"`
	Gateway          string `json:"gateway"`
}

// PaymentRequestInfo is what the payment page needs to open a Paystack
// checkout: the public key plus the metadata echoed back through the provider.
type PaymentRequestInfo struct {
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Currency  string                 `json:"currency"`
	Status    string                 `json:"status"`
	PublicKey string                 `json:"public_key"`
	Metadata  PaymentRequestMetadata `json:"metadata"`
}
