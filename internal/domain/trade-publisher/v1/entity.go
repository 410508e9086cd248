package tradepublisherv1

import (
	"encoding/json"
	"time"

	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
)

// TradeEvent is the wire form of a trade.
type TradeEvent struct {
	TradeID     string    `json:"tradeID"`
	Symbol      string    `json:"symbol"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
	BuyOrderID  string    `json:"buyOrderID"`
	SellOrderID string    `json:"sellOrderID"`
	BuyerID     string    `json:"buyerID"`
	SellerID    string    `json:"sellerID"`
	TakerSide   string    `json:"takerSide"`
	Timestamp   time.Time `json:"timestamp"`
}

// CreateFromTrade creates a trade event from a ledger trade.
func CreateFromTrade(symbol string, trade orderbookv1.Trade) *TradeEvent {
	return &TradeEvent{
		TradeID:     trade.ID,
		Symbol:      symbol,
		Price:       trade.Price,
		Quantity:    trade.Quantity,
		BuyOrderID:  trade.BuyOrderID,
		SellOrderID: trade.SellOrderID,
		BuyerID:     trade.BuyerID,
		SellerID:    trade.SellerID,
		TakerSide:   string(trade.TakerSide),
		Timestamp:   time.Unix(0, trade.Timestamp).UTC(),
	}
}

// Key returns the partition key of the event.
func (e *TradeEvent) Key() []byte {
	return []byte(e.Symbol)
}

// ToBytes converts the trade event to a byte array.
func ToBytes(event *TradeEvent) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		return nil
	}
	return data
}

// FromBytes converts a byte array to a trade event.
func FromBytes(data []byte) *TradeEvent {
	var event TradeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil
	}
	return &event
}
