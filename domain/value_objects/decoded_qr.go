package value_objects

// DecodedQRView - display labels for one decoded payload, "-" for missing fields
type DecodedQRView struct {
	Bank          string `json:"bank"`
	AccountNumber string `json:"account_number"`
	QrType        string `json:"qr_type"`
	Method        string `json:"method"`
	Amount        string `json:"amount"`
	Country       string `json:"country"`
	MerchantCity  string `json:"merchant_city"`
	AccountName   string `json:"account_name"`
	CRC           string `json:"crc"`
	RawText       string `json:"raw_text,omitempty"`
}
