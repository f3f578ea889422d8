package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestauto/internal/domain/entities"
	"gestauto/internal/usecase/interfaces"
)

var (
	ErrFollowUpNotFound      = errors.New("follow-up not found")
	ErrInvalidFollowUpStatus = errors.New("invalid follow-up status")
)

// IFollowUpUseCase exposes the scheduled post-sale contacts. Scheduling
// happens inside the work-order transaction; here they are listed and closed.

type IFollowUpUseCase interface {
	FindAll(ctx context.Context, companyID string, status *entities.FollowUpStatus) ([]entities.FollowUp, error)
	MarkDone(ctx context.Context, companyID, id string) (entities.FollowUp, error)
}

type FollowUpUseCase struct {
	repo interfaces.IFollowUpRepository

	now func() time.Time
}

var _ IFollowUpUseCase = (*FollowUpUseCase)(nil)

func NewFollowUpUseCase(repo interfaces.IFollowUpRepository) *FollowUpUseCase {
	return &FollowUpUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *FollowUpUseCase) FindAll(ctx context.Context, companyID string, status *entities.FollowUpStatus) ([]entities.FollowUp, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	if status != nil && *status != entities.FollowUpStatusPendente && *status != entities.FollowUpStatusConcluido {
		return nil, ErrInvalidFollowUpStatus
	}
	return u.repo.ListByCompany(ctx, companyID, status)
}

func (u *FollowUpUseCase) MarkDone(ctx context.Context, companyID, id string) (entities.FollowUp, error) {
	companyID = strings.TrimSpace(companyID)
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.FollowUp{}, ErrFollowUpNotFound
	}

	done, err := u.repo.MarkDone(ctx, companyID, id, u.now())
	if err != nil {
		return entities.FollowUp{}, err
	}
	if done.ID == "" {
		return entities.FollowUp{}, ErrFollowUpNotFound
	}
	return done, nil
}
