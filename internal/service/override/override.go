package override

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetservice/internal/entities"
)

// Override issues and redeems the single-use numeric codes that let a
// blocked unit run one more trip. Codes travel out-of-band (voice or SMS
// from the supervisor to the driver), so the plaintext is returned exactly
// once, at issuance.
type Override struct {
	repository    Repository
	unitRepo      UnitRepository
	expiryFactory TokenExpiryFactory
	codeGenerator CodeGenerator
}

func New(
	repository Repository,
	unitRepo UnitRepository,
	expiryFactory TokenExpiryFactory,
	codeGenerator CodeGenerator,
) *Override {
	return &Override{
		repository:    repository,
		unitRepo:      unitRepo,
		expiryFactory: expiryFactory,
		codeGenerator: codeGenerator,
	}
}

// Issue creates a token for the unit. Any existing unit may receive one;
// whether the unit actually is blocked is the supervisor's call, not a
// precondition here.
func (s *Override) Issue(ctx context.Context, unitID int64, issuedBy string) (*entities.OverrideToken, error) {
	if unitID <= 0 {
		return nil, ErrInvalidUnitID
	}
	if strings.TrimSpace(issuedBy) == "" {
		issuedBy = entities.DefaultTokenIssuer
	}

	if _, err := s.unitRepo.GetByID(ctx, unitID); err != nil {
		return nil, fmt.Errorf("get unit: %w", err)
	}

	code, err := s.codeGenerator.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	token, err := s.repository.Create(ctx, entities.OverrideToken{
		UnitID:    unitID,
		Code:      code,
		IssuedBy:  issuedBy,
		ExpiresAt: s.expiryFactory.CalculateExpiry(time.Now().UTC()),
		Used:      false,
	})
	if err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}

	return token, nil
}

// Redeem consumes a token. It never changes the unit's maintenance status:
// the token is a one-time bypass, not a repair, and the unit stays blocked
// until it is serviced.
func (s *Override) Redeem(ctx context.Context, unitID int64, code string) error {
	if unitID <= 0 {
		return ErrInvalidUnitID
	}
	if !isValidCode(code) {
		return ErrInvalidCode
	}

	if err := s.repository.Redeem(ctx, unitID, code); err != nil {
		return fmt.Errorf("redeem token: %w", err)
	}

	return nil
}
