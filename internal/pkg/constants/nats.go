package constants

// NATS Subjects
const (
	// Transfer events
	SubjectTransferCompleted = "transfers.completed"

	// Account events
	SubjectAccountFunded = "accounts.funded"
)
