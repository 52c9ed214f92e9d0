package operator

import (
	"context"
	"fmt"
	"strings"

	"fleetservice/internal/entities"
)

type Operator struct {
	repository  Repository
	companyRepo CompanyRepository
	txManager   TxManager
}

func New(repository Repository, companyRepo CompanyRepository, txManager TxManager) *Operator {
	return &Operator{
		repository:  repository,
		companyRepo: companyRepo,
		txManager:   txManager,
	}
}

func (s *Operator) CreateOperator(ctx context.Context, name, companyName string) (int64, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(companyName) == "" {
		return 0, ErrMissingRequiredFields
	}

	var id int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		company, err := s.companyRepo.GetByName(ctx, companyName)
		if err != nil {
			return fmt.Errorf("resolve company: %w", err)
		}

		id, err = s.repository.Create(ctx, entities.OperatorModify{
			Name:      &name,
			CompanyID: &company.ID,
		})
		if err != nil {
			return fmt.Errorf("create operator: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *Operator) UpdateOperator(ctx context.Context, id int64, name, companyName string) (*entities.Operator, error) {
	if id <= 0 {
		return nil, ErrInvalidOperatorID
	}
	if strings.TrimSpace(name) == "" || strings.TrimSpace(companyName) == "" {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Operator
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		company, err := s.companyRepo.GetByName(ctx, companyName)
		if err != nil {
			return fmt.Errorf("resolve company: %w", err)
		}

		updated, err = s.repository.Update(ctx, entities.OperatorModify{
			ID:        &id,
			Name:      &name,
			CompanyID: &company.ID,
		})
		if err != nil {
			return fmt.Errorf("update operator: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Operator) DeleteOperator(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidOperatorID
	}

	if err := s.repository.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	return nil
}

func (s *Operator) GetOperators(ctx context.Context, companyName *string) ([]entities.Operator, error) {
	operators, err := s.repository.GetAll(ctx, companyName)
	if err != nil {
		return nil, fmt.Errorf("get operators: %w", err)
	}

	return operators, nil
}
