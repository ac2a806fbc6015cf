// Package payment simulates settlement of a reservation total.  The
// gateway is a stub boundary: a real implementation would replace this
// component entirely, which is why the contract is kept to a minimal
// approved/declined receipt.
package payment

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
)

// Receipt is the outcome of a charge attempt.
//
// Fields:
//  Approved    - whether the charge was accepted.  The stub always
//                approves; the field exists so callers already handle
//                the declined case a real gateway would produce.
//  Reference   - opaque transaction reference for the attempt.
//  AmountCents - amount that was charged, echoed back.
//  ProcessedAt - when the gateway processed the attempt.
type Receipt struct {
	Approved    bool      `json:"approved"`
	Reference   string    `json:"reference"`
	AmountCents int64     `json:"amount_cents"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Gateway accepts charges.  It holds no state beyond configuration.
type Gateway struct{}

// New returns a payment gateway.
func New() *Gateway {
	return &Gateway{}
}

// Charge settles the given amount against the opaque payment details.
// Any details string and any amount are accepted, including zero and
// negative amounts: the stub performs no validation, it records the
// attempt and approves it.  The context is honored the way a real
// gateway's network round trip would honor it: a cancelled context
// aborts the charge before anything is recorded.
func (g *Gateway) Charge(ctx context.Context, details string, amountCents int64) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, err
	}
	ref := uuid.NewString()
	log.Printf("payment: processing charge of %.2f (ref=%s, details=%q)", float64(amountCents)/100, ref, details)
	return Receipt{
		Approved:    true,
		Reference:   ref,
		AmountCents: amountCents,
		ProcessedAt: time.Now().UTC(),
	}, nil
}
