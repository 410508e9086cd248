package orderbookv1

// DepthLevel is one aggregated price level of a depth snapshot.
type DepthLevel struct {
	Price      float64 `json:"price"`
	Quantity   float64 `json:"quantity"`
	OrderCount int     `json:"orderCount"`
}

// Depth is an N-level view of both sides ordered by price priority:
// bids descending, asks ascending.
type Depth struct {
	Bids []DepthLevel `json:"bids"`
	Asks []DepthLevel `json:"asks"`
}

// Limits represents a slice of Limit pointers, representing multiple price levels.
type Limits []*Limit

// ToDepth converts limits already in priority order to depth levels, keeping at most n (all when n <= 0).
func (ls Limits) ToDepth(n int) []DepthLevel {
	if n <= 0 || n > len(ls) {
		n = len(ls)
	}
	levels := make([]DepthLevel, 0, n)
	for _, l := range ls[:n] {
		levels = append(levels, DepthLevel{
			Price:      l.Price,
			Quantity:   l.TotalVolume,
			OrderCount: l.OrderCount(),
		})
	}
	return levels
}
