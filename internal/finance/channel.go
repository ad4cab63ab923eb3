package finance

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/recordkeeper/internal/types"
)

// Channel is the payment rail a transaction is processed through.
type Channel string

const (
	ChannelBankTransfer Channel = "bank_transfer"
	ChannelMobileMoney  Channel = "mobile_money"
	ChannelCryptoWallet Channel = "crypto_wallet"
)

// Channels lists every supported channel.
var Channels = []Channel{ChannelBankTransfer, ChannelMobileMoney, ChannelCryptoWallet}

// ParseChannel converts a configuration or CSV value into a Channel. Both
// "mobile_money" and "Mobile Money" are accepted.
func ParseChannel(s string) (Channel, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	for _, c := range Channels {
		if Channel(norm) == c {
			return c, nil
		}
	}

	return "", fmt.Errorf("unknown payment channel %q", s)
}

// Label is the display name of the channel.
func (c Channel) Label() string {
	switch c {
	case ChannelBankTransfer:
		return "Bank Transfer"
	case ChannelMobileMoney:
		return "Mobile Money"
	case ChannelCryptoWallet:
		return "Crypto Wallet"
	default:
		return string(c)
	}
}

// Receipt records that a channel processed a transaction.
type Receipt struct {
	Channel     Channel
	Transaction types.Transaction
}

// Process hands tx to the channel and returns the receipt.
func Process(c Channel, tx types.Transaction) (Receipt, error) {
	if _, err := ParseChannel(string(c)); err != nil {
		return Receipt{}, err
	}

	return Receipt{Channel: c, Transaction: tx}, nil
}
