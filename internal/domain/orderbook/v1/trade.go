package orderbookv1

import "github.com/oklog/ulid/v2"

// Trade is the immutable record of one match between a resting order and an aggressor.
type Trade struct {
	ID          string  `json:"id"`
	Price       float64 `json:"price"`
	Quantity    float64 `json:"quantity"`
	BuyOrderID  string  `json:"buyOrderID"`
	SellOrderID string  `json:"sellOrderID"`
	BuyerID     string  `json:"buyerID"`
	SellerID    string  `json:"sellerID"`
	TakerSide   Side    `json:"takerSide"`
	Timestamp   int64   `json:"timestamp"`
}

// newTrade builds the trade for a match between the incoming aggressor and a resting order.
func newTrade(incoming, resting *Order, price, quantity float64, timestamp int64) Trade {
	trade := Trade{
		ID:        ulid.Make().String(),
		Price:     price,
		Quantity:  quantity,
		TakerSide: incoming.Side,
		Timestamp: timestamp,
	}

	bid, ask := incoming, resting
	if incoming.IsAsk() {
		bid, ask = resting, incoming
	}
	trade.BuyOrderID, trade.BuyerID = bid.ID, bid.UserID
	trade.SellOrderID, trade.SellerID = ask.ID, ask.UserID

	return trade
}

// Notional returns price times quantity.
func (t Trade) Notional() float64 {
	return t.Price * t.Quantity
}

// Involves reports whether userID is the buyer or the seller.
func (t Trade) Involves(userID string) bool {
	return t.BuyerID == userID || t.SellerID == userID
}

// SideOf returns the side userID took in the trade. ok is false when userID is not a counterparty.
// A self-trade reports BUY.
func (t Trade) SideOf(userID string) (side Side, ok bool) {
	switch userID {
	case t.BuyerID:
		return SideBuy, true
	case t.SellerID:
		return SideSell, true
	default:
		return "", false
	}
}
