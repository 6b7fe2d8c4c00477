package entities

// CRCStatus - outcome of the tag 63 checksum check on a scan
type CRCStatus string

const (
	CRCUnchecked CRCStatus = "UNCHECKED"
	CRCValid     CRCStatus = "VALID"
	CRCInvalid   CRCStatus = "INVALID"
	// payload has no trailing 6304 field
	CRCMissing CRCStatus = "MISSING"
)

// NewCRCStatus - maps the result of emvqr.VerifyCRC
func NewCRCStatus(valid, ok bool) CRCStatus {
	switch {
	case !ok:
		return CRCMissing
	case valid:
		return CRCValid
	}
	return CRCInvalid
}

func (s CRCStatus) StatusString() string {
	if s == "" {
		return string(CRCUnchecked)
	}
	return string(s)
}

func (s CRCStatus) IsValid() bool {
	return s == CRCValid
}

func (s CRCStatus) IsInvalid() bool {
	return s == CRCInvalid
}
