package aptos

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/aptoswatch/internal/balance"
	"github.com/gabapcia/aptoswatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

const activitiesQuery = `query Activities($min: bigint!, $max: bigint!, $limit: Int!, $offset: Int!) {
  fungible_asset_activities(
    where: { transaction_version: { _gte: $min, _lte: $max } }
    order_by: [{ transaction_version: asc }, { event_index: asc }]
    limit: $limit
    offset: $offset
  ) {
    amount
    asset_type
    metadata {
      decimals
      name
      symbol
    }
    transaction_version
    is_transaction_success
    owner_address
    type
    event_index
  }
}`

type (
	// MetadataResponse is the fungible asset metadata joined to an activity.
	MetadataResponse struct {
		Decimals uint8  `json:"decimals"`
		Name     string `json:"name"`
		Symbol   string `json:"symbol"`
	}

	// ActivityResponse is one row of fungible_asset_activities.
	ActivityResponse struct {
		Amount               *decimal.Decimal  `json:"amount"`
		AssetType            *string           `json:"asset_type"`
		Metadata             *MetadataResponse `json:"metadata"`
		TransactionVersion   types.Uint64      `json:"transaction_version"`
		IsTransactionSuccess bool              `json:"is_transaction_success"`
		OwnerAddress         *string           `json:"owner_address"`
		Type                 string            `json:"type"`
		EventIndex           types.Uint64      `json:"event_index"`
	}

	activitiesResponse struct {
		Activities []ActivityResponse `json:"fungible_asset_activities"`
	}
)

func (a ActivityResponse) toEvent() balance.Event {
	e := balance.Event{
		TransactionVersion: a.TransactionVersion.Uint64(),
		EventIndex:         a.EventIndex.Uint64(),
		Type:               a.Type,
		Amount:             a.Amount,
		OwnerAddress:       a.OwnerAddress,
		AssetType:          a.AssetType,
		IsSuccess:          a.IsTransactionSuccess,
	}
	if a.Metadata != nil {
		decimals := a.Metadata.Decimals
		e.Decimals = &decimals
	}
	return e
}

// Activities returns every activity with minVersion <= version <= maxVersion,
// ordered by version then event index.
func (c *client) Activities(ctx context.Context, minVersion, maxVersion uint64) ([]balance.Event, error) {
	var events []balance.Event
	for offset := 0; ; offset += c.pageSize {
		data, err := c.conn.Query(ctx, activitiesQuery, map[string]any{
			"min":    minVersion,
			"max":    maxVersion,
			"limit":  c.pageSize,
			"offset": offset,
		})
		if err != nil {
			return nil, fmt.Errorf("query activities [%d, %d]: %w", minVersion, maxVersion, err)
		}

		var page activitiesResponse
		if err := json.Unmarshal(data, &page); err != nil {
			return nil, fmt.Errorf("decode activities [%d, %d]: %w", minVersion, maxVersion, err)
		}

		for _, a := range page.Activities {
			events = append(events, a.toEvent())
		}

		if len(page.Activities) < c.pageSize {
			return events, nil
		}
	}
}
