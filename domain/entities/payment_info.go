package entities

// PaymentInfo - fields decoded from a VietQR payload. An empty string means
// the field was not found.
type PaymentInfo struct {
	AccountName   string `json:"account_name,omitempty" bson:"account_name,omitempty"`
	Amount        string `json:"amount,omitempty" bson:"amount,omitempty"`
	BankBin       string `json:"bank_bin,omitempty" bson:"bank_bin,omitempty"`
	AccountNumber string `json:"account_number,omitempty" bson:"account_number,omitempty"`
	MerchantName  string `json:"merchant_name,omitempty" bson:"merchant_name,omitempty"`
	Currency      string `json:"currency,omitempty" bson:"currency,omitempty"`
	CountryCode   string `json:"country_code,omitempty" bson:"country_code,omitempty"`
	MerchantCity  string `json:"merchant_city,omitempty" bson:"merchant_city,omitempty"`
	CRC           string `json:"crc,omitempty" bson:"crc,omitempty"`
	QrTypeCode    string `json:"qr_type_code,omitempty" bson:"qr_type_code,omitempty"`
	Method        string `json:"method,omitempty" bson:"method,omitempty"`
	BankName      string `json:"bank_name,omitempty" bson:"bank_name,omitempty"`
	RawText       string `json:"raw_text" bson:"raw_text"`
}

func (p *PaymentInfo) fields() []*string {
	return []*string{
		&p.AccountName,
		&p.Amount,
		&p.BankBin,
		&p.AccountNumber,
		&p.MerchantName,
		&p.Currency,
		&p.CountryCode,
		&p.MerchantCity,
		&p.CRC,
		&p.QrTypeCode,
		&p.Method,
		&p.BankName,
		&p.RawText,
	}
}

// FillMissing copies every field of src into p where p has none yet.
// Fields already set on p are never overwritten.
func (p *PaymentInfo) FillMissing(src PaymentInfo) {
	dst := p.fields()
	for i, v := range src.fields() {
		if *dst[i] == "" && *v != "" {
			*dst[i] = *v
		}
	}
}

// HasBankAccount reports whether both the BIN and the account were found.
func (p PaymentInfo) HasBankAccount() bool {
	return p.BankBin != "" && p.AccountNumber != ""
}
