package errors

// User-facing error messages. The address and aggregation messages are part of
// the endpoint's wire contract and must not be reworded casually.
const (
	MsgAddressRequired   = "Address is required"
	MsgAggregationFailed = "Failed to fetch property details"
	MsgRateLimited       = "You're searching too quickly! Please wait a moment and try again."
	MsgInternalError     = "Something went wrong on our end. Please try again later."
)
