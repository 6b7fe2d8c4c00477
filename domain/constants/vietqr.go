package constants

// EMVCo top-level tags read by the decoder.
const (
	TagPayloadFormat   = "00"
	TagInitiation      = "01"
	TagMerchantAccount = "26"
	TagVietQRAccount   = "38"
	TagCurrency        = "53"
	TagAmount          = "54"
	TagCountryCode     = "58"
	TagMerchantName    = "59"
	TagMerchantCity    = "60"
	TagAdditionalData  = "62"
	TagCRC             = "63"
)

// Tags inside a merchant account information template.
const (
	TagAccountGUID   = "00"
	TagAccountBin    = "01"
	TagAccountNumber = "02"
)

// NAPAS 247 identifier in the GUID field of tag 38.
const VietQRGUID = "A000000727"

// Service codes carried in tag 38.02.
const (
	MethodAccountTransfer = "QRIBFTTA"
	MethodCardTransfer    = "QRIBFTTC"
)

const (
	QrTypeStatic  = "11"
	QrTypeDynamic = "12"

	CurrencyVND     = "704"
	CurrencyVNDCode = "VND"
	CountryVN       = "VN"
)

// Nhãn hiển thị
const (
	LabelQrTypeStatic  = "QR thanh toán tĩnh (Static)"
	LabelQrTypeDynamic = "QR thanh toán động (Merchant-presented)"
	LabelCountryVN     = "Việt Nam"
	LabelEmpty         = "-"
	LabelNoAccountName = "Không có trong mã (không có Tag 59)"
)
