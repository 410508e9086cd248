package strategyv1

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	orderbookv1 "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1"
	orderbookmock "github.com/muhammadchandra19/marketsim/internal/domain/orderbook/v1/mock"
	"github.com/stretchr/testify/assert"
)

func TestSnapshotFromBook(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		setup    func(m *orderbookmock.MockOrderbook)
		expected MarketSnapshot
	}{
		{
			name: "two sided",
			setup: func(m *orderbookmock.MockOrderbook) {
				m.EXPECT().Depth(10).Return(orderbookv1.Depth{})
				m.EXPECT().BestBid().Return(99.0, true)
				m.EXPECT().BestAsk().Return(101.0, true)
			},
			expected: MarketSnapshot{
				Timestamp: now, BestBid: 99, BestAsk: 101, MidPrice: 100, Spread: 2,
				HasBid: true, HasAsk: true,
			},
		},
		{
			name: "one sided",
			setup: func(m *orderbookmock.MockOrderbook) {
				m.EXPECT().Depth(10).Return(orderbookv1.Depth{})
				m.EXPECT().BestBid().Return(99.0, true)
				m.EXPECT().BestAsk().Return(0.0, false)
			},
			expected: MarketSnapshot{Timestamp: now, BestBid: 99, HasBid: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			book := orderbookmock.NewMockOrderbook(ctrl)
			tc.setup(book)

			snapshot := SnapshotFromBook(book, 10, now)
			assert.Equal(t, tc.expected, snapshot)
			assert.Equal(t, tc.expected.HasBid && tc.expected.HasAsk, snapshot.HasMid())
		})
	}
}
