package reportpublisherv1

import (
	"encoding/json"
	"time"
)

// EquityRecord is a point-in-time view of a strategy's account.
type EquityRecord struct {
	Strategy string    `json:"strategy"`
	Symbol   string    `json:"symbol"`
	Step     int       `json:"step"`
	SimTime  float64   `json:"simTime"`
	Time     time.Time `json:"time"`

	Price          float64 `json:"price"`
	Cash           float64 `json:"cash"`
	Inventory      float64 `json:"inventory"`
	PortfolioValue float64 `json:"portfolioValue"`
	TotalPnL       float64 `json:"totalPnL"`
	RealizedPnL    float64 `json:"realizedPnL"`
	UnrealizedPnL  float64 `json:"unrealizedPnL"`

	InventoryUtilizationPct float64 `json:"inventoryUtilizationPct"`
	Skew                    float64 `json:"skew"`
}

// payloadField carries the JSON encoded record inside a stream entry.
const payloadField = "payload"

// ToValues converts the record to stream entry fields. Strategy and step are
// duplicated as plain fields so entries can be filtered without decoding.
func (r *EquityRecord) ToValues() map[string]any {
	return map[string]any{
		"strategy":   r.Strategy,
		"step":       r.Step,
		payloadField: ToBytes(r),
	}
}

// FromValues decodes a record from stream entry fields.
func FromValues(values map[string]any) *EquityRecord {
	switch payload := values[payloadField].(type) {
	case string:
		return FromBytes([]byte(payload))
	case []byte:
		return FromBytes(payload)
	}
	return nil
}

// ToBytes converts the record to a byte array.
func ToBytes(record *EquityRecord) []byte {
	data, err := json.Marshal(record)
	if err != nil {
		return nil
	}
	return data
}

// FromBytes converts a byte array to a record.
func FromBytes(data []byte) *EquityRecord {
	var record EquityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil
	}
	return &record
}
