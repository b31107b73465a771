package contract

import (
	"go.uber.org/zap"

	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

// Event identification, NEP-297 shape.
const (
	EventStandard = "nep171"
	EventVersion  = "1.1.0"
)

// Event names emitted by the contract.
const (
	EventCreateSeries           = "create_series"
	EventNFTMint                = "nft_mint"
	EventNFTTransfer            = "nft_transfer"
	EventNFTMetadataUpdate      = "nft_metadata_update"
	EventContractMetadataUpdate = "contract_metadata_update"
)

// Event is one ledger event record. Events are emitted only after the
// call's transaction commits.
type Event struct {
	Standard string `json:"standard"`
	Version  string `json:"version"`
	Event    string `json:"event"`
	Data     any    `json:"data"`
}

// MintData is the payload of an nft_mint event.
type MintData struct {
	OwnerID  types.AccountID `json:"owner_id"`
	TokenIDs []string        `json:"token_ids"`
}

// TransferData is the payload of an nft_transfer event.
type TransferData struct {
	OldOwnerID types.AccountID `json:"old_owner_id"`
	NewOwnerID types.AccountID `json:"new_owner_id"`
	TokenIDs   []string        `json:"token_ids"`
}

// SeriesData is the payload of series-level events.
type SeriesData struct {
	SeriesID uint64          `json:"series_id"`
	OwnerID  types.AccountID `json:"owner_id"`
}

// EventSink receives committed events.
type EventSink interface {
	Emit(e Event)
}

// nopSink discards events; the library default.
type nopSink struct{}

func (nopSink) Emit(Event) {}

// LogSink writes events through a zap logger, one record per event.
type LogSink struct {
	log *zap.Logger
}

// NewLogSink builds a sink on the given logger.
func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit logs the event as a structured record.
func (s *LogSink) Emit(e Event) {
	s.log.Info("EVENT_JSON",
		zap.String("standard", e.Standard),
		zap.String("version", e.Version),
		zap.String("event", e.Event),
		zap.Any("data", e.Data),
	)
}

func (c *Contract) emit(name string, data any) {
	c.events.Emit(Event{
		Standard: EventStandard,
		Version:  EventVersion,
		Event:    name,
		Data:     data,
	})
}
