package sync

// Config holds the per-hash retry ceilings the driver enforces during
// the backward header walk and the forward block apply.
type Config struct {
	MaxHeaderRequestRetryAttempts int
	MaxBlockRequestRetryAttempts  int
}

// DefaultConfig returns both knobs defaulted to 5.
func DefaultConfig() Config {
	return Config{
		MaxHeaderRequestRetryAttempts: 5,
		MaxBlockRequestRetryAttempts:  5,
	}
}
