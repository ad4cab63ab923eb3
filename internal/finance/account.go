package finance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// ErrInsufficientFunds is returned when a savings account would be
// overdrawn by a transaction.
var ErrInsufficientFunds = errors.New("insufficient funds")

// AccountKind selects how an account applies a transaction.
type AccountKind string

const (
	// KindPlain deducts every transaction, even into a negative balance.
	KindPlain AccountKind = "plain"

	// KindSavings refuses transactions larger than the current balance.
	KindSavings AccountKind = "savings"
)

// ParseAccountKind converts a configuration value into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch kind := AccountKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case KindPlain, KindSavings:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown account kind %q", s)
	}
}

// Account is a balance that transactions are applied against.
type Account struct {
	Number  string
	Kind    AccountKind
	balance decimal.Decimal
}

// NewAccount creates an account with an initial balance.
func NewAccount(number string, kind AccountKind, initial decimal.Decimal) *Account {
	return &Account{Number: number, Kind: kind, balance: initial}
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Apply deducts tx from the balance according to the account kind. On
// error the balance is unchanged.
func (a *Account) Apply(tx types.Transaction) error {
	switch a.Kind {
	case KindPlain:
		a.balance = a.balance.Sub(tx.Amount)
		return nil
	case KindSavings:
		if tx.Amount.GreaterThan(a.balance) {
			return ErrInsufficientFunds
		}
		a.balance = a.balance.Sub(tx.Amount)
		return nil
	default:
		return fmt.Errorf("account %s: unknown kind %q", a.Number, a.Kind)
	}
}
