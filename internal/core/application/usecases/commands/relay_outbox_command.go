package commands

// DefaultRelayBatchSize is used when RelayOutboxCommand.BatchSize is not positive.
const DefaultRelayBatchSize = 100

// RelayOutboxCommand forwards up to BatchSize pending outbox messages to the
// configured dispatcher.
type RelayOutboxCommand struct {
	BatchSize int `json:"batchSize"`
}

func (c RelayOutboxCommand) batchSize() int {
	if c.BatchSize <= 0 {
		return DefaultRelayBatchSize
	}
	return c.BatchSize
}
