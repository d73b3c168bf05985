package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veritasfin/loanflow/internal/domain/model"
	"github.com/veritasfin/loanflow/internal/domain/port"
)

// StubSanctionRenderer issues sanction identifiers and download locators
// without producing an actual PDF. It implements port.SanctionRenderer.
type StubSanctionRenderer struct {
	now func() time.Time
}

// NewStubSanctionRenderer creates a new renderer.
func NewStubSanctionRenderer() *StubSanctionRenderer {
	return &StubSanctionRenderer{now: time.Now}
}

// Render builds an identifier like SL202608291430A1B2C3 and its download
// locator.
func (r *StubSanctionRenderer) Render(_ context.Context, s *model.Session) (port.SanctionLetter, error) {
	if s == nil {
		return port.SanctionLetter{}, fmt.Errorf("session is required")
	}

	suffix := strings.ToUpper(uuid.New().String()[:6])
	sanctionID := fmt.Sprintf("SL%s%s", r.now().Format("200601021504"), suffix)

	return port.SanctionLetter{
		SanctionID: sanctionID,
		Locator:    "/api/v1/sanction/download/" + sanctionID,
	}, nil
}
