package aptos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gabapcia/aptoswatch/internal/blockingest"
	"github.com/gabapcia/aptoswatch/internal/pkg/transport/rest"
	"github.com/gabapcia/aptoswatch/internal/pkg/types"
)

// ErrBlockNotFound is returned when the node does not serve the height, either
// because it is pruned or because it was not produced yet.
var ErrBlockNotFound = errors.New("block not found")

type (
	// LedgerInfoResponse is the body of GET /v1.
	LedgerInfoResponse struct {
		ChainID             int          `json:"chain_id"`
		Epoch               types.Uint64 `json:"epoch"`
		LedgerVersion       types.Uint64 `json:"ledger_version"`
		OldestLedgerVersion types.Uint64 `json:"oldest_ledger_version"`
		LedgerTimestamp     types.Uint64 `json:"ledger_timestamp"`
		BlockHeight         types.Uint64 `json:"block_height"`
		OldestBlockHeight   types.Uint64 `json:"oldest_block_height"`
	}

	// BlockResponse is the body of GET /v1/blocks/by_height/{height}.
	BlockResponse struct {
		BlockHeight    types.Uint64 `json:"block_height"`
		BlockHash      string       `json:"block_hash"`
		BlockTimestamp types.Uint64 `json:"block_timestamp"`
		FirstVersion   types.Uint64 `json:"first_version"`
		LastVersion    types.Uint64 `json:"last_version"`
	}

	// ErrorResponse is the body of a rejected request.
	ErrorResponse struct {
		Message     string `json:"message"`
		ErrorCode   string `json:"error_code"`
		VMErrorCode *int   `json:"vm_error_code"`
	}
)

func (b BlockResponse) toBlockRange() blockingest.BlockRange {
	return blockingest.BlockRange{
		Height:       b.BlockHeight.Uint64(),
		FirstVersion: b.FirstVersion.Uint64(),
		LastVersion:  b.LastVersion.Uint64(),
	}
}

// TipHeight returns the latest block height known to the node.
func (c *client) TipHeight(ctx context.Context) (uint64, error) {
	var info LedgerInfoResponse
	if err := c.conn.Get(ctx, "/v1", nil, &info); err != nil {
		return 0, fmt.Errorf("get ledger info: %w", err)
	}
	return info.BlockHeight.Uint64(), nil
}

// BlockByHeight returns the version range of the block at height.
func (c *client) BlockByHeight(ctx context.Context, height uint64) (blockingest.BlockRange, error) {
	var (
		path  = "/v1/blocks/by_height/" + strconv.FormatUint(height, 10)
		query = url.Values{"with_transactions": []string{"false"}}
		block BlockResponse
	)

	if err := c.conn.Get(ctx, path, query, &block); err != nil {
		if isBlockNotFound(err) {
			return blockingest.BlockRange{}, fmt.Errorf("%w: %d", ErrBlockNotFound, height)
		}
		return blockingest.BlockRange{}, fmt.Errorf("get block %d: %w", height, err)
	}

	if block.LastVersion < block.FirstVersion {
		return blockingest.BlockRange{}, fmt.Errorf("get block %d: invalid version range [%d, %d]", height, block.FirstVersion, block.LastVersion)
	}

	return block.toBlockRange(), nil
}

func isBlockNotFound(err error) bool {
	var statusErr *rest.StatusError
	if !errors.As(err, &statusErr) {
		return false
	}
	if statusErr.StatusCode == http.StatusNotFound {
		return true
	}

	var body ErrorResponse
	if json.Unmarshal(statusErr.Body, &body) != nil {
		return false
	}
	return body.ErrorCode == "block_not_found" || body.ErrorCode == "block_pruned"
}
