package vietqr

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/leekchan/accounting"
	"github.com/spf13/cast"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
	"vietqr-system/domain/value_objects"
)

func PrettyQrType(code string) string {
	switch code {
	case "":
		return constants.LabelEmpty
	case constants.QrTypeStatic:
		return constants.LabelQrTypeStatic
	case constants.QrTypeDynamic:
		return constants.LabelQrTypeDynamic
	}
	return code
}

func PrettyCurrency(code string) string {
	if code == "" || code == constants.CurrencyVND {
		return constants.CurrencyVNDCode
	}
	return code
}

func PrettyCountry(code string) string {
	switch code {
	case "":
		return constants.LabelEmpty
	case constants.CountryVN:
		return constants.LabelCountryVN
	}
	return code
}

// PrettyAmount groups thousands the Vietnamese way: 1500000 -> 1.500.000,
// 1000.5 -> 1.000,5. Text that is not a number is returned unchanged.
func PrettyAmount(amount string) string {
	if amount == "" {
		return constants.LabelEmpty
	}
	n, err := cast.ToFloat64E(strings.TrimSpace(amount))
	if err != nil {
		return amount
	}
	s := humanize.FormatFloat("#.###,###", n)
	if strings.Contains(s, ",") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ",")
	}
	return s
}

// PrettyMoney - amount with its currency label, e.g. "1.500.000 VND".
// VND has no minor unit and is rendered without decimals.
func PrettyMoney(amount, currency string) string {
	if amount == "" {
		return constants.LabelEmpty
	}
	symbol := PrettyCurrency(currency)
	n, err := cast.ToFloat64E(strings.TrimSpace(amount))
	if err != nil {
		return amount + " " + symbol
	}

	precision := 2
	if symbol == constants.CurrencyVNDCode {
		precision = 0
	}
	ac := accounting.Accounting{
		Symbol:         symbol,
		Precision:      precision,
		Thousand:       ".",
		Decimal:        ",",
		Format:         "%v %s",
		FormatNegative: "-%v %s",
		FormatZero:     "%v %s",
	}
	return ac.FormatMoney(n)
}

// PrettyBank - "Vietcombank (BIN 970436)", "(BIN 970436)" or "-".
func PrettyBank(info entities.PaymentInfo) string {
	switch {
	case info.BankName != "":
		return fmt.Sprintf("%s (BIN %s)", info.BankName, info.BankBin)
	case info.BankBin != "":
		return fmt.Sprintf("(BIN %s)", info.BankBin)
	}
	return constants.LabelEmpty
}

// Describe renders every field of info for display.
func Describe(info entities.PaymentInfo) value_objects.DecodedQRView {
	accountName := info.AccountName
	if accountName == "" {
		accountName = constants.LabelNoAccountName
	}
	return value_objects.DecodedQRView{
		Bank:          PrettyBank(info),
		AccountNumber: orEmpty(info.AccountNumber),
		QrType:        PrettyQrType(info.QrTypeCode),
		Method:        orEmpty(info.Method),
		Amount:        PrettyMoney(info.Amount, info.Currency),
		Country:       PrettyCountry(info.CountryCode),
		MerchantCity:  orEmpty(info.MerchantCity),
		AccountName:   accountName,
		CRC:           orEmpty(info.CRC),
		RawText:       info.RawText,
	}
}

func orEmpty(s string) string {
	if s == "" {
		return constants.LabelEmpty
	}
	return s
}
