package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/job/dto"
	"internhub/modules/job/repository"

	"github.com/google/uuid"
)

type JobServiceInterface interface {
	ListJobs(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedJobResponse, *errors.AppError)
	GetJobByID(ctx context.Context, id uuid.UUID) (*dto.JobResponse, *errors.AppError)
	SaveJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) *errors.AppError
	UnsaveJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) *errors.AppError
	ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]dto.JobResponse, *errors.AppError)
}

type JobService struct {
	repo repository.JobRepositoryInterface
}

func NewJobService(repo repository.JobRepositoryInterface) *JobService {
	return &JobService{repo: repo}
}

func (s *JobService) ListJobs(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedJobResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, queryParams)
	if err != nil {
		logger.Error("JobService:ListJobs:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list jobs", err)
	}
	return dto.ToPaginatedJobResponse(page), nil
}

func (s *JobService) GetJobByID(ctx context.Context, id uuid.UUID) (*dto.JobResponse, *errors.AppError) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Error("JobService:GetJobByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get job", err)
	}
	if job == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Job not found", nil)
	}
	return dto.ToJobResponse(job), nil
}

func (s *JobService) SaveJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) *errors.AppError {
	job, err := s.repo.GetByID(ctx, jobID)
	if err != nil {
		logger.Error("JobService:SaveJob:Get:Error:", err)
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get job", err)
	}
	if job == nil {
		return errors.NewAppError(errors.ErrNotFound, "Job not found", nil)
	}

	if err := s.repo.Save(ctx, userID, jobID); err != nil {
		logger.Error("JobService:SaveJob:Error:", err)
		return errors.NewAppError(errors.ErrCreateFailed, "Failed to save job", err)
	}
	return nil
}

func (s *JobService) UnsaveJob(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) *errors.AppError {
	if err := s.repo.Unsave(ctx, userID, jobID); err != nil {
		logger.Error("JobService:UnsaveJob:Error:", err)
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to unsave job", err)
	}
	return nil
}

func (s *JobService) ListSavedJobs(ctx context.Context, userID uuid.UUID) ([]dto.JobResponse, *errors.AppError) {
	jobs, err := s.repo.ListSaved(ctx, userID)
	if err != nil {
		logger.Error("JobService:ListSavedJobs:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list saved jobs", err)
	}
	return dto.ToJobResponses(jobs), nil
}
