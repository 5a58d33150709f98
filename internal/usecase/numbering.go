package usecase

import (
	"context"
	"fmt"
	"repairdesk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	seqTicket   = "ticket"
	seqEstimate = "estimate"
	seqInvoice  = "invoice"
	seqClaim    = "claim"
)

var numberPrefixes = map[string]string{
	seqTicket:   "TKT",
	seqEstimate: "EST",
	seqInvoice:  "INV",
	seqClaim:    "WC",
}

// nextNumber formats the next value of a shop-scoped sequence, e.g. TKT-000042.
func nextNumber(ctx context.Context, seq interfaces.ISequenceGenerator, shopID, name string) (string, error) {
	n, err := seq.Next(ctx, fmt.Sprintf("shop:%s:%s", shopID, name))
	if err != nil {
		return "", fmt.Errorf("next %s number: %w", name, err)
	}
	return fmt.Sprintf("%s-%06d", numberPrefixes[name], n), nil
}

// derivedID is stable for the same (kind, source) pair so a retried
// conversion lands on the record the first attempt created.
func derivedID(kind string, parts ...string) string {
	name := kind
	for _, p := range parts {
		name += ":" + p
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("repairdesk:"+name)).String()
}
