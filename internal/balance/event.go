// Package balance turns indexer asset activities into signed per-owner,
// per-token balance changes and renders them for notifications.
package balance

import (
	"cmp"
	"slices"

	"github.com/gabapcia/aptoswatch/internal/address"
	"github.com/gabapcia/aptoswatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// Event kinds recognized by FromEvent.
const (
	EventGasFee       = "0x1::aptos_coin::GasFeeEvent"
	EventCoinWithdraw = "0x1::coin::WithdrawEvent"
	EventCoinDeposit  = "0x1::coin::DepositEvent"
	EventFAWithdraw   = "0x1::fungible_asset::Withdraw"
	EventFADeposit    = "0x1::fungible_asset::Deposit"
)

// Event is one fungible asset activity reported by the indexer. Nil fields
// were absent in the response and make the event unattributable.
type Event struct {
	TransactionVersion uint64
	EventIndex         uint64
	Type               string
	Amount             *decimal.Decimal
	OwnerAddress       *string
	AssetType          *string
	Decimals           *uint8
	IsSuccess          bool
}

// Transaction is the events of one transaction version.
type Transaction struct {
	Version uint64
	Events  []Event
}

// Succeeded reports whether the transaction's first event is marked
// successful. A transaction without events is not.
func (t Transaction) Succeeded() bool {
	return len(t.Events) > 0 && t.Events[0].IsSuccess
}

// Owners returns the distinct normalized owner addresses in first-seen order.
func (t Transaction) Owners() []string {
	owners := types.NewSet[string]()
	ordered := make([]string, 0, len(t.Events))
	for _, e := range t.Events {
		if e.OwnerAddress == nil {
			continue
		}
		owner := address.Normalize(*e.OwnerAddress)
		if owners.Contains(owner) {
			continue
		}
		owners.Add(owner)
		ordered = append(ordered, owner)
	}
	return ordered
}

// GroupByVersion stable-sorts events by transaction version and groups them.
// The input slice is not modified.
func GroupByVersion(events []Event) []Transaction {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b Event) int {
		return cmp.Compare(a.TransactionVersion, b.TransactionVersion)
	})

	var txs []Transaction
	for _, e := range sorted {
		if n := len(txs); n > 0 && txs[n-1].Version == e.TransactionVersion {
			txs[n-1].Events = append(txs[n-1].Events, e)
			continue
		}
		txs = append(txs, Transaction{Version: e.TransactionVersion, Events: []Event{e}})
	}
	return txs
}
