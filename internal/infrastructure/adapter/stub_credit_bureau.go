package adapter

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/veritasfin/loanflow/internal/domain/port"
)

// preApprovedLimits is the fixed set a demo profile draws from.
var preApprovedLimits = []int64{200_000, 300_000, 500_000, 750_000, 1_000_000}

// StubCreditBureau is a development/demo adapter that synthesizes a credit
// profile for any PAN: a random score between 700 and 850 and one of a fixed
// set of pre-approved limits. It implements port.CreditBureau.
type StubCreditBureau struct{}

// NewStubCreditBureau creates a new stub adapter.
func NewStubCreditBureau() *StubCreditBureau {
	return &StubCreditBureau{}
}

// LookupByTaxID synthesizes a demo profile. This fallback is a documented
// demo behavior, not a silent failure.
func (c *StubCreditBureau) LookupByTaxID(_ context.Context, pan string) (port.CreditProfile, error) {
	if pan == "" {
		return port.CreditProfile{}, fmt.Errorf("pan is required")
	}

	return port.CreditProfile{
		Found:            true,
		CustomerID:       uuid.New().String(),
		CreditScore:      700 + rand.Intn(151), // [700, 850]
		PreApprovedLimit: preApprovedLimits[rand.Intn(len(preApprovedLimits))],
	}, nil
}
