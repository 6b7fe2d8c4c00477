package value_objects

import (
	"time"

	"vietqr-system/domain/entities"
)

// DecodedQREvent - body of the vietqr-decoded kafka event and of the mqtt push
type DecodedQREvent struct {
	ScanID    string               `json:"scan_id"`
	Source    string               `json:"source,omitempty"`
	ClientID  string               `json:"client_id,omitempty"`
	CRCStatus entities.CRCStatus   `json:"crc_status"`
	Info      entities.PaymentInfo `json:"info"`
	View      DecodedQRView        `json:"view"`
	CreatedAt time.Time            `json:"created_at"`
}
