package handler

// VerifyRequest is the transport shape for POST /verify. The batch code is an
// opaque, case-sensitive identifier; any string is accepted. Codes matching no
// record classify as FAKE rather than failing validation.
type VerifyRequest struct {
	BatchCode string `json:"batch_code"`
}
