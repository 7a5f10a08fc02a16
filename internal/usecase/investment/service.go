package investment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/simaogato/investment-tracker/internal/domain"
)

// Service handles investment lot CRUD operations
type Service struct {
	InvestmentRepo domain.InvestmentRepository
}

// NewService creates a new investment Service instance
func NewService(investmentRepo domain.InvestmentRepository) *Service {
	return &Service{InvestmentRepo: investmentRepo}
}

// List retrieves all investment lots
func (s *Service) List(ctx context.Context) ([]domain.Investment, error) {
	return s.InvestmentRepo.Load(ctx)
}

// Get retrieves a single lot by ID
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range investments {
		if investments[i].ID == id {
			return &investments[i], nil
		}
	}

	return nil, domain.ErrInvestmentNotFound
}

// Add creates a new lot.
// Logic:
//  1. Assign an ID if the caller did not supply one
//  2. Recompute the stored total cost from quantity, price, and fees
//  3. Validate domain rules
//  4. Append to the lot list and save
func (s *Service) Add(ctx context.Context, inv domain.Investment) (*domain.Investment, error) {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}

	inv.RecalculateTotalCost()
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInvestment, err)
	}

	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	investments = append(investments, inv)
	if err := s.InvestmentRepo.Save(ctx, investments); err != nil {
		return nil, fmt.Errorf("failed to save investments: %w", err)
	}

	return &inv, nil
}

// Update replaces the lot with the given ID. The ID itself is immutable;
// the stored total cost is recomputed from the updated purchase fields.
func (s *Service) Update(ctx context.Context, id uuid.UUID, inv domain.Investment) (*domain.Investment, error) {
	inv.ID = id
	inv.RecalculateTotalCost()
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInvestment, err)
	}

	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load investments: %w", err)
	}

	for i := range investments {
		if investments[i].ID == id {
			investments[i] = inv
			if err := s.InvestmentRepo.Save(ctx, investments); err != nil {
				return nil, fmt.Errorf("failed to save investments: %w", err)
			}
			return &inv, nil
		}
	}

	return nil, domain.ErrInvestmentNotFound
}

// Delete removes the lot with the given ID
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	investments, err := s.InvestmentRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load investments: %w", err)
	}

	filtered := make([]domain.Investment, 0, len(investments))
	for _, existing := range investments {
		if existing.ID != id {
			filtered = append(filtered, existing)
		}
	}

	if len(filtered) == len(investments) {
		return domain.ErrInvestmentNotFound
	}

	if err := s.InvestmentRepo.Save(ctx, filtered); err != nil {
		return fmt.Errorf("failed to save investments: %w", err)
	}

	return nil
}
