package constants

const (
	// rabbitmq topic exchange carrying DecodeRequest messages
	TopicDecodeQR = "vietqr-decode"
	// kafka topic for decoded scans
	TopicDecodedQR = "vietqr-decoded"

	TopicMQTTDecodedQR = "decoded-qr"
)

type Message struct {
	Event       string      `json:"t"`
	Key         string      `json:"k"`
	MessageData interface{} `json:"d"`
}

const (
	MQTTEventNotification = "notification"
	MQTTEventBackground   = "background"
)

const (
	MQTTDecodeSuccess = "decode-success"
	MQTTCRCMismatch   = "crc-mismatch"
)

const (
	SourceAPI   = "api"
	SourceQueue = "queue"
	SourceCLI   = "cli"
)

const (
	CollectionScanHistory = "scan_history"
	CollectionBanks       = "banks"
)

const DefaultHistoryLimit int64 = 20
