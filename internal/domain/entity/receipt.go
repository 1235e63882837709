package entity

// ReceiptInfo is the store identity read off a verified receipt.
type ReceiptInfo struct {
	StoreName    string
	StoreAddress string
}

// ReceiptStatus tags a ReceiptResult.
type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusFailure ReceiptStatus = "failure"
)

// ReceiptFailureReason explains why a receipt was not accepted.
type ReceiptFailureReason string

const (
	// The recognition service answered with a status other than success.
	ReceiptNotRecognized ReceiptFailureReason = "not_recognized"
	// Recognition succeeded but the store name or address was missing.
	ReceiptIncomplete ReceiptFailureReason = "incomplete"
	// The recognition call did not finish within its time budget.
	ReceiptTimeout ReceiptFailureReason = "timeout"
	// The recognition service could not be reached or is shedding load.
	ReceiptUnavailable ReceiptFailureReason = "unavailable"
	// The recognition response could not be decoded.
	ReceiptMalformed ReceiptFailureReason = "malformed"
	// No image bytes were submitted.
	ReceiptEmptyImage ReceiptFailureReason = "empty_image"
)

// ReceiptResult is either a success carrying Info or a failure carrying Reason.
type ReceiptResult struct {
	Status ReceiptStatus
	Info   *ReceiptInfo
	Reason ReceiptFailureReason
	Detail string // Diagnostic text for logs; not shown to callers.
}

// ReceiptSucceeded builds a successful result.
func ReceiptSucceeded(info ReceiptInfo) *ReceiptResult {
	return &ReceiptResult{Status: ReceiptStatusSuccess, Info: &info}
}

// ReceiptFailed builds a failed result.
func ReceiptFailed(reason ReceiptFailureReason, detail string) *ReceiptResult {
	return &ReceiptResult{Status: ReceiptStatusFailure, Reason: reason, Detail: detail}
}

// OK reports whether the receipt was verified.
func (r *ReceiptResult) OK() bool {
	return r != nil && r.Status == ReceiptStatusSuccess && r.Info != nil
}
