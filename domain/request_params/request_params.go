package request_params

// DecodeRequest - body of a decode call and of a vietqr-decode queue message
type DecodeRequest struct {
	RawText  string `json:"raw_text"`
	Source   string `json:"source"`
	ClientID string `json:"client_id"`
}

type ScanHistoryReq struct {
	ClientID string `json:"client_id"`
	Limit    int64  `json:"limit"`
}
