package orderbookv1

import "time"

// ExecutionReport wraps the result of one submission with execution statistics.
type ExecutionReport struct {
	OrderID           string      `json:"orderID"`
	Status            OrderStatus `json:"status"`
	FilledQuantity    float64     `json:"filledQuantity"`
	RemainingQuantity float64     `json:"remainingQuantity"`
	// AvgPrice is the volume-weighted execution price; zero when nothing traded.
	AvgPrice       float64 `json:"avgPrice"`
	ReferencePrice float64 `json:"referencePrice"`
	// SlippagePct is |AvgPrice - ReferencePrice| / ReferencePrice * 100.
	SlippagePct float64 `json:"slippagePct"`
	Trades      []Trade `json:"trades"`
	Rested      bool    `json:"rested"`

	// Latency is informational only; matching is never delayed by it.
	Latency        time.Duration `json:"latency"`
	SubmissionTime time.Time     `json:"submissionTime"`
	ArrivalTime    time.Time     `json:"arrivalTime"`
}

// NumTrades returns the number of trades the submission produced.
func (r *ExecutionReport) NumTrades() int {
	return len(r.Trades)
}

// ImpactReport estimates the cost of consuming contra-side depth without mutating the book.
type ImpactReport struct {
	Side           Side    `json:"side"`
	Quantity       float64 `json:"quantity"`
	AvgPrice       float64 `json:"avgPrice"`
	ReferencePrice float64 `json:"referencePrice"`
	ImpactPct      float64 `json:"impactPct"`
	LevelsConsumed int     `json:"levelsConsumed"`
	TotalCost      float64 `json:"totalCost"`
	// Shortfall is the quantity depth could not satisfy.
	Shortfall float64 `json:"shortfall"`
}
