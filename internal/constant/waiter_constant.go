package constant

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"

	// HistoryWindow is how many trailing turns are rendered into the prompt
	// and returned to the client. The full transcript is always persisted.
	HistoryWindow = 5
)

const (
	OrderStatusPending   = "pending"
	OrderStatusAccepted  = "accepted"
	OrderStatusPreparing = "preparing"
	OrderStatusServed    = "served"
	OrderStatusCancelled = "cancelled"
)

var OrderStatuses = map[string]bool{
	OrderStatusPending:   true,
	OrderStatusAccepted:  true,
	OrderStatusPreparing: true,
	OrderStatusServed:    true,
	OrderStatusCancelled: true,
}
