package balance

import (
	"fmt"
	"math"
	"strings"

	"github.com/gabapcia/aptoswatch/internal/address"
	"github.com/gabapcia/aptoswatch/internal/tokenprice"

	"github.com/shopspring/decimal"
)

const (
	// NativeCoinType is the asset type of the chain's native coin.
	NativeCoinType = "0x1::aptos_coin::AptosCoin"
	nativeSymbol   = "APT"
	nativeDecimals = 8
)

// usdScale is the fixed-point scale of stored prices.
var usdScale = decimal.New(1, 6)

// TokenKind tells the native coin apart from other assets.
type TokenKind int

const (
	TokenNative TokenKind = iota
	TokenAccount
)

// Token is the asset a Change moves.
type Token struct {
	Kind     TokenKind
	Address  string
	Decimals uint8
}

// Native returns the native coin.
func Native() Token {
	return Token{Kind: TokenNative, Address: NativeCoinType, Decimals: nativeDecimals}
}

// NewTokenAccount returns a non-native asset.
func NewTokenAccount(addr string, decimals uint8) Token {
	return Token{Kind: TokenAccount, Address: address.Normalize(addr), Decimals: decimals}
}

// Key is the address the token is priced under.
func (t Token) Key() string {
	if t.Kind == TokenNative {
		return NativeCoinType
	}
	return t.Address
}

// Short is the display fallback when the token has no name.
func (t Token) Short() string {
	if t.Kind == TokenNative {
		return nativeSymbol
	}
	return address.Short(t.Address)
}

// Prices looks up token prices by address.
type Prices interface {
	Lookup(addr string) (tokenprice.Entry, bool)
}

// Change is a signed amount, in base units, of one token for one owner.
// Negative amounts are outflows.
type Change struct {
	Owner  string
	Token  Token
	Amount decimal.Decimal
}

// Received reports whether the change is an inflow.
func (c Change) Received() bool {
	return c.Amount.IsPositive()
}

// UIAmount renders the absolute amount with the token's decimals.
func (c Change) UIAmount() string {
	d := int32(c.Token.Decimals)
	return c.Amount.Abs().Shift(-d).StringFixed(d)
}

// USDValue is price * amount / 10^6, signed like the amount. It reports false
// when the token has no price entry.
func (c Change) USDValue(prices Prices) (float64, bool) {
	entry, ok := prices.Lookup(c.Token.Key())
	if !ok {
		return 0, false
	}

	v, _ := decimal.NewFromFloat(entry.PriceUSD).Mul(c.Amount).Div(usdScale).Float64()
	return v, true
}

// Line renders the change as one notification line.
func (c Change) Line(prices Prices) string {
	name := c.Token.Short()
	if entry, ok := prices.Lookup(c.Token.Key()); ok && entry.Name != nil && *entry.Name != "" {
		name = *entry.Name
	}

	direction := "Sent"
	if c.Received() {
		direction = "Receive"
	}

	// The direction word carries the sign.
	usd, _ := c.USDValue(prices)
	return fmt.Sprintf("%s %s %s %s $(%.3f)", address.Short(address.Normalize(c.Owner)), direction, c.UIAmount(), name, math.Abs(usd))
}

// FromEvent maps a recognized, attributable event to a Change.
func FromEvent(e Event) (Change, bool) {
	if e.Amount == nil || e.OwnerAddress == nil || e.Decimals == nil {
		return Change{}, false
	}

	var (
		sign  int64
		token Token
	)
	switch e.Type {
	case EventGasFee:
		sign, token = -1, Native()
	case EventCoinWithdraw, EventCoinDeposit:
		sign = 1
		if e.Type == EventCoinWithdraw {
			sign = -1
		}
		token = coinToken(e.AssetType, *e.Decimals)
	case EventFAWithdraw, EventFADeposit:
		if e.AssetType == nil || *e.AssetType == "" {
			return Change{}, false
		}
		sign = 1
		if e.Type == EventFAWithdraw {
			sign = -1
		}
		token = NewTokenAccount(*e.AssetType, *e.Decimals)
	default:
		return Change{}, false
	}

	return Change{
		Owner:  address.Normalize(*e.OwnerAddress),
		Token:  token,
		Amount: e.Amount.Mul(decimal.NewFromInt(sign)),
	}, true
}

func coinToken(assetType *string, decimals uint8) Token {
	if assetType == nil || *assetType == "" || strings.EqualFold(*assetType, NativeCoinType) {
		return Native()
	}
	return NewTokenAccount(*assetType, decimals)
}

// FromEvents maps every recognized event, skipping the rest.
func FromEvents(events []Event) []Change {
	changes := make([]Change, 0, len(events))
	for _, e := range events {
		if c, ok := FromEvent(e); ok {
			changes = append(changes, c)
		}
	}
	return changes
}

// FilterByOwner keeps the changes belonging to owner.
func FilterByOwner(changes []Change, owner string) []Change {
	owner = address.Normalize(owner)

	var filtered []Change
	for _, c := range changes {
		if c.Owner == owner {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
