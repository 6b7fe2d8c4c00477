package telegram

import (
	"fmt"

	"vietqr-system/domain/entities"
	"vietqr-system/utils/helpers"
)

func CRCMismatchMessage(record entities.ScanRecord) string {
	return fmt.Sprintf(`
Cảnh báo mã QR sai CRC
Scan id: %v
Nguồn: %v
BIN: %v
Số tài khoản: %v
Số tiền: %v
CRC trong mã: %v
Thời gian quét: %v
`,
		record.ScanID,
		record.Source,
		record.Info.BankBin,
		record.Info.AccountNumber,
		record.Info.Amount,
		record.Info.CRC,
		record.CreatedAt.In(helpers.LocationVietNam()).Format("02-01-2006 15:04:05"),
	)
}
