package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/internship/dto"
	"internhub/modules/internship/repository"

	"github.com/google/uuid"
)

type InternshipServiceInterface interface {
	ListInternships(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedInternshipResponse, *errors.AppError)
	GetInternshipByID(ctx context.Context, id uuid.UUID) (*dto.InternshipResponse, *errors.AppError)
	SaveInternship(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) *errors.AppError
	UnsaveInternship(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) *errors.AppError
	ListSavedInternships(ctx context.Context, userID uuid.UUID) ([]dto.InternshipResponse, *errors.AppError)
}

type InternshipService struct {
	repo repository.InternshipRepositoryInterface
}

func NewInternshipService(repo repository.InternshipRepositoryInterface) *InternshipService {
	return &InternshipService{repo: repo}
}

func (s *InternshipService) ListInternships(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedInternshipResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, queryParams)
	if err != nil {
		logger.Error("InternshipService:ListInternships:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list internships", err)
	}
	return dto.ToPaginatedInternshipResponse(page), nil
}

func (s *InternshipService) GetInternshipByID(ctx context.Context, id uuid.UUID) (*dto.InternshipResponse, *errors.AppError) {
	internship, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Error("InternshipService:GetInternshipByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get internship", err)
	}
	if internship == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Internship not found", nil)
	}
	return dto.ToInternshipResponse(internship), nil
}

func (s *InternshipService) SaveInternship(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) *errors.AppError {
	internship, err := s.repo.GetByID(ctx, internshipID)
	if err != nil {
		logger.Error("InternshipService:SaveInternship:Get:Error:", err)
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get internship", err)
	}
	if internship == nil {
		return errors.NewAppError(errors.ErrNotFound, "Internship not found", nil)
	}

	if err := s.repo.Save(ctx, userID, internshipID); err != nil {
		logger.Error("InternshipService:SaveInternship:Error:", err)
		return errors.NewAppError(errors.ErrCreateFailed, "Failed to save internship", err)
	}
	return nil
}

func (s *InternshipService) UnsaveInternship(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) *errors.AppError {
	if err := s.repo.Unsave(ctx, userID, internshipID); err != nil {
		logger.Error("InternshipService:UnsaveInternship:Error:", err)
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to unsave internship", err)
	}
	return nil
}

func (s *InternshipService) ListSavedInternships(ctx context.Context, userID uuid.UUID) ([]dto.InternshipResponse, *errors.AppError) {
	internships, err := s.repo.ListSaved(ctx, userID)
	if err != nil {
		logger.Error("InternshipService:ListSavedInternships:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list saved internships", err)
	}
	return dto.ToInternshipResponses(internships), nil
}
