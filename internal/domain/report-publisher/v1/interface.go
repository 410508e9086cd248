package reportpublisherv1

import "context"

// ReportPublisher defines the interface for publishing periodic equity records.
//
//go:generate mockgen -source interface.go -destination=mock/interface_mock.go -package=reportpublisherv1_mock
type ReportPublisher interface {
	PublishEquity(ctx context.Context, record *EquityRecord) error
	Close(ctx context.Context) error
}
