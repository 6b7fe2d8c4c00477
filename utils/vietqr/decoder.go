// Package vietqr pulls payment fields out of VietQR / EMVCo payloads.
//
// Decoding runs two independent passes. The tree pass walks the TLV tree;
// the scan pass searches the raw text for literal tags. The tree pass wins:
// the scan pass only fills fields the tree pass left empty. Decoding never
// fails; fields that cannot be found stay empty.
package vietqr

import (
	"regexp"
	"strings"

	"vietqr-system/domain/constants"
	"vietqr-system/domain/entities"
	"vietqr-system/utils/emvqr"
)

var (
	binPattern         = regexp.MustCompile(`^97\d{3,4}$`)
	accountPattern     = regexp.MustCompile(`^\d{6,}$`)
	fallbackBinPattern = regexp.MustCompile(`970\d{3}`)
	crcPattern         = regexp.MustCompile(`(?i)63\d{2}([0-9A-F]{4})$`)
)

// Decoder is safe for concurrent use.
type Decoder struct {
	parser *emvqr.Parser
	banks  BankResolver
}

type Option func(*Decoder)

// WithContainerTags overrides the TLV tags that are decoded recursively.
func WithContainerTags(tags ...string) Option {
	return func(d *Decoder) {
		if len(tags) > 0 {
			d.parser = emvqr.NewParser(tags...)
		}
	}
}

// WithBanks replaces the built-in BIN table.
func WithBanks(banks BankResolver) Option {
	return func(d *Decoder) {
		if banks != nil {
			d.banks = banks
		}
	}
}

func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		parser: emvqr.NewParser(),
		banks:  NewBankTable(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDecoder = NewDecoder()

// ParseVietQR decodes rawText with the default decoder.
func ParseVietQR(rawText string) entities.PaymentInfo {
	return defaultDecoder.Decode(rawText)
}

// Decode always returns a record with RawText set to rawText.
func (d *Decoder) Decode(rawText string) entities.PaymentInfo {
	info := entities.PaymentInfo{RawText: rawText}

	info.FillMissing(FromTree(d.parser.Parse(rawText)))
	info.FillMissing(FromScan(rawText))
	inferBankAccount(rawText, &info)

	if info.BankBin != "" {
		if name, ok := d.banks.BankName(info.BankBin); ok {
			info.BankName = name
		}
	}
	return info
}

// FromTree reads the top-level scalar tags and the bank account held in a
// merchant account template, tag 38 first, then 26.
func FromTree(tree emvqr.Tree) entities.PaymentInfo {
	name := tree.Scalar(constants.TagMerchantName)
	info := entities.PaymentInfo{
		MerchantName: name,
		AccountName:  name,
		Currency:     tree.Scalar(constants.TagCurrency),
		Amount:       tree.Scalar(constants.TagAmount),
		CountryCode:  tree.Scalar(constants.TagCountryCode),
		QrTypeCode:   tree.Scalar(constants.TagInitiation),
		CRC:          tree.Scalar(constants.TagCRC),
	}

	for _, tag := range []string{constants.TagVietQRAccount, constants.TagMerchantAccount} {
		if block, ok := tree.Sub(tag); ok {
			scanBankBlock(block, &info)
		}
	}
	return info
}

// scanBankBlock looks for a bank account at this level and then in every
// nested template below it. A NAPAS GUID names the BIN (01) and account (02)
// directly; otherwise a GUID that looks like a BIN is taken as the BIN and
// a long numeric 01 as the account. Values found earlier are kept.
func scanBankBlock(block emvqr.Tree, info *entities.PaymentInfo) {
	if guid, ok := scalarField(block, constants.TagAccountGUID); ok {
		if strings.EqualFold(guid, constants.VietQRGUID) {
			if bin, ok := scalarField(block, constants.TagAccountBin); ok && info.BankBin == "" {
				info.BankBin = bin
			}
			if account, ok := scalarField(block, constants.TagAccountNumber); ok && info.AccountNumber == "" {
				info.AccountNumber = account
			}
		} else {
			if info.BankBin == "" && binPattern.MatchString(guid) {
				info.BankBin = guid
			}
			if account, ok := scalarField(block, constants.TagAccountBin); ok && info.AccountNumber == "" && accountPattern.MatchString(account) {
				info.AccountNumber = account
			}
		}
	}

	for _, tag := range block.Tags() {
		if sub, ok := block.Sub(tag); ok {
			scanBankBlock(sub, info)
		}
	}
}

func scalarField(t emvqr.Tree, tag string) (string, bool) {
	v, ok := t[tag]
	if !ok {
		return "", false
	}
	return v.Str()
}

// FromScan searches rawText for literal tags without walking the TLV
// structure. Tag characters that happen to appear inside another field's
// value are read as tags too, so hits are less reliable than FromTree.
func FromScan(rawText string) entities.PaymentInfo {
	var info entities.PaymentInfo

	if name, ok := emvqr.FirstTag(rawText, constants.TagMerchantName); ok {
		name = strings.TrimSpace(name)
		info.MerchantName = name
		info.AccountName = name
	}
	if amount, ok := emvqr.FirstTag(rawText, constants.TagAmount); ok {
		info.Amount = amount
	}
	if currency, ok := emvqr.FirstTag(rawText, constants.TagCurrency); ok {
		info.Currency = currency
	}
	if country, ok := emvqr.FirstTag(rawText, constants.TagCountryCode); ok {
		info.CountryCode = country
	}
	if city, ok := emvqr.FirstTag(rawText, constants.TagMerchantCity); ok {
		info.MerchantCity = strings.TrimSpace(city)
	}

	for _, block := range emvqr.AllTags(rawText, constants.TagVietQRAccount) {
		for _, guid := range emvqr.AllTags(block, constants.TagAccountGUID) {
			if guid != constants.VietQRGUID {
				continue
			}
			if bin, ok := emvqr.FirstTag(block, constants.TagAccountBin); ok && info.BankBin == "" {
				info.BankBin = bin
			}
			if account, ok := emvqr.FirstTag(block, constants.TagAccountNumber); ok && info.AccountNumber == "" {
				info.AccountNumber = account
			}
			break
		}
		if info.HasBankAccount() {
			break
		}
	}

	if m := crcPattern.FindStringSubmatch(rawText); m != nil {
		info.CRC = strings.ToUpper(m[1])
	}
	info.Method = detectMethod(rawText)

	return info
}

// inferBankAccount runs on the merged record: with no BIN yet, the first
// "970xxx" in the text is taken; with a BIN but no account, the digits that
// directly follow the BIN are taken.
func inferBankAccount(rawText string, info *entities.PaymentInfo) {
	if info.BankBin == "" {
		info.BankBin = fallbackBinPattern.FindString(rawText)
	}
	if info.BankBin != "" && info.AccountNumber == "" {
		re := regexp.MustCompile(regexp.QuoteMeta(info.BankBin) + `(\d{6,})`)
		if m := re.FindStringSubmatch(rawText); m != nil {
			info.AccountNumber = m[1]
		}
	}
}

// detectMethod reports the NAPAS service code found anywhere in the text.
// QRIBFTTC (card transfer) is reported as well as QRIBFTTA, so a payload
// carrying only the card code still gets a method; QRIBFTTA wins when both
// appear.
func detectMethod(rawText string) string {
	upper := strings.ToUpper(rawText)
	for _, method := range []string{constants.MethodAccountTransfer, constants.MethodCardTransfer} {
		if strings.Contains(upper, method) {
			return method
		}
	}
	return ""
}
