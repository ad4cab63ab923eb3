// Package finance applies transactions to an account through one of the
// supported payment channels and keeps the transaction history.
package finance

import (
	"errors"

	"github.com/ginjaninja78/recordkeeper/internal/logger"
	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// HistoryEntry is one processed transaction. Applied is false when the
// account rejected it.
type HistoryEntry struct {
	Transaction types.Transaction
	Channel     Channel
	Applied     bool
}

// Scheduled pairs a transaction with the channel it should go through.
type Scheduled struct {
	Transaction types.Transaction
	Channel     Channel
}

// Result is what Process reports for a single transaction.
type Result struct {
	Receipt Receipt
	Outcome types.Outcome
}

// App processes transactions against a single account.
type App struct {
	lggr     logger.Logger
	account  *Account
	currency string
	history  []HistoryEntry
}

// NewApp creates an App for account. currency is the symbol used in
// outcome messages.
func NewApp(lggr logger.Logger, account *Account, currency string) *App {
	return &App{
		lggr:     lggr.Named("finance"),
		account:  account,
		currency: currency,
	}
}

// Account returns the account the App applies transactions to.
func (a *App) Account() *Account {
	return a.account
}

// Process sends tx through channel and applies it to the account. The
// transaction is recorded in the history whether or not the account
// accepted it.
func (a *App) Process(tx types.Transaction, channel Channel) Result {
	receipt, err := Process(channel, tx)
	if err != nil {
		a.lggr.Warnw("transaction not processed", "id", tx.ID, "channel", channel, "err", err)
		return Result{Outcome: types.Failed("Process Error", err)}
	}

	err = a.account.Apply(tx)
	a.history = append(a.history, HistoryEntry{Transaction: tx, Channel: channel, Applied: err == nil})

	switch {
	case err == nil:
		a.lggr.Infow("transaction applied",
			"id", tx.ID, "amount", tx.Amount.String(), "balance", a.account.Balance().String())
		return Result{Receipt: receipt, Outcome: a.appliedOutcome(tx)}
	case errors.Is(err, ErrInsufficientFunds):
		a.lggr.Warnw("transaction rejected",
			"id", tx.ID, "amount", tx.Amount.String(), "balance", a.account.Balance().String())
		return Result{Receipt: receipt, Outcome: types.Outcome{Message: "Insufficient funds", Err: err}}
	default:
		a.lggr.Errorw("transaction failed", "id", tx.ID, "err", err)
		return Result{Receipt: receipt, Outcome: types.Failed("Apply Error", err)}
	}
}

// Run processes every scheduled transaction in order.
func (a *App) Run(scheduled []Scheduled) []Result {
	results := make([]Result, 0, len(scheduled))
	for _, s := range scheduled {
		results = append(results, a.Process(s.Transaction, s.Channel))
	}

	return results
}

// History returns a copy of the processed transactions in order.
func (a *App) History() []HistoryEntry {
	return append([]HistoryEntry{}, a.history...)
}

func (a *App) appliedOutcome(tx types.Transaction) types.Outcome {
	balance := types.FormatAmount(a.currency, a.account.Balance())
	if a.account.Kind == KindPlain {
		return types.Succeeded("Transaction Applied. New Balance: %s", balance)
	}

	return types.Succeeded("Transaction of %s applied. New Balance: %s",
		types.FormatAmount(a.currency, tx.Amount), balance)
}
