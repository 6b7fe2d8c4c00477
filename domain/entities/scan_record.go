package entities

import (
	"time"
)

// ScanRecord - one decoded payload as stored in the scan history
type ScanRecord struct {
	ScanID      string      `json:"scan_id" bson:"_id"`
	Source      string      `json:"source,omitempty" bson:"source,omitempty"`
	ClientID    string      `json:"client_id,omitempty" bson:"client_id,omitempty"`
	PayloadHash string      `json:"payload_hash" bson:"payload_hash"`
	Info        PaymentInfo `json:"info" bson:"info"`
	CRCStatus   CRCStatus   `json:"crc_status" bson:"crc_status"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}
