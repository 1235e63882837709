package service

// Admission outcomes reported for every submit attempt.
const (
	OutcomeAdmitted           = "admitted"
	OutcomeMemberNotFound     = "member_not_found"
	OutcomeReceiptInvalid     = "receipt_invalid"
	OutcomeUnsupportedArea    = "unsupported_area"
	OutcomeDuplicateReview    = "duplicate_review"
	OutcomeStoreCreation      = "store_creation_failed"
	OutcomeValidationRejected = "validation_failed"
	OutcomeError              = "error"
)

// AdmissionRecorder counts review admission outcomes
type AdmissionRecorder interface {
	ObserveAdmission(outcome string)
}
