package primego

// Strategy identifies the sieve used to answer a call.
type Strategy uint8

const (
	// StrategyDense sieves a single buffer over [0, U].
	StrategyDense Strategy = iota
	// StrategySegmented sweeps [2, U] in fixed-size windows.
	StrategySegmented
)

func (s Strategy) String() string {
	switch s {
	case StrategyDense:
		return "dense"
	case StrategySegmented:
		return "segmented"
	default:
		return "unknown"
	}
}
