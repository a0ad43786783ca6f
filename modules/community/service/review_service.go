package service

import (
	"context"
	"fmt"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/community/dto"
	"internhub/modules/community/entity"
	"internhub/modules/community/repository"

	"github.com/google/uuid"
)

type ReviewServiceInterface interface {
	ListReviews(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedReviewResponse, *errors.AppError)
	GetReviewByID(ctx context.Context, id uuid.UUID) (*dto.ReviewResponse, *errors.AppError)
	CreateReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, *errors.AppError)
	DeleteReview(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
	ToggleReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID, reaction entity.ReactionType) (*dto.ReactionResponse, *errors.AppError)
}

type ReviewService struct {
	repo repository.ReviewRepositoryInterface
}

func NewReviewService(repo repository.ReviewRepositoryInterface) *ReviewService {
	return &ReviewService{repo: repo}
}

func (s *ReviewService) ListReviews(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedReviewResponse, *errors.AppError) {
	page, err := s.repo.List(ctx, queryParams)
	if err != nil {
		logger.Error("ReviewService:ListReviews:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list reviews", err)
	}
	return dto.ToPaginatedReviewResponse(page), nil
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id uuid.UUID) (*dto.ReviewResponse, *errors.AppError) {
	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logger.Error("ReviewService:GetReviewByID:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get review", err)
	}
	if review == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Review not found", nil)
	}
	return dto.ToReviewResponse(review), nil
}

func (s *ReviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *dto.CreateReviewRequest) (*dto.ReviewResponse, *errors.AppError) {
	positionType := entity.PositionType(req.PositionType)
	if positionType != entity.PositionTypeInternship && positionType != entity.PositionTypeJob {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Invalid position type: %s", req.PositionType), nil)
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Rating must be between 1 and 5", nil)
	}
	if req.Company == "" || req.Position == "" || req.Review == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Company, position and review are required", nil)
	}

	reviewSlug, err := uniqueSlug(ctx, req.Company+" "+req.Position, s.repo.SlugExists)
	if err != nil {
		logger.Error("ReviewService:CreateReview:Slug:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create review", err)
	}

	review := &entity.Review{
		UserID:       userID,
		Company:      req.Company,
		Position:     req.Position,
		PositionType: positionType,
		Rating:       req.Rating,
		Content:      req.Review,
		Slug:         reviewSlug,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		logger.Error("ReviewService:CreateReview:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create review", err)
	}

	return dto.ToReviewResponse(&entity.ReviewWithReactions{Review: *review}), nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		logger.Error("ReviewService:DeleteReview:Error:", err)
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete review", err)
	}
	return nil
}

// ToggleReaction flips the caller's vote on a review. Toggling the reaction
// the user already holds removes it; setting the opposite reaction replaces
// it, so a user is never in both the like and dislike sets.
func (s *ReviewService) ToggleReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID, reaction entity.ReactionType) (*dto.ReactionResponse, *errors.AppError) {
	if reaction != entity.ReactionLike && reaction != entity.ReactionDislike {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			fmt.Sprintf("Invalid reaction: %s", reaction), nil)
	}

	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		logger.Error("ReviewService:ToggleReaction:Get:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get review", err)
	}
	if review == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Review not found", nil)
	}

	current, err := s.repo.GetReaction(ctx, reviewID, userID)
	if err != nil {
		logger.Error("ReviewService:ToggleReaction:GetReaction:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get reaction", err)
	}

	if current == reaction {
		err = s.repo.ClearReaction(ctx, reviewID, userID)
	} else {
		err = s.repo.SetReaction(ctx, reviewID, userID, reaction)
	}
	if err != nil {
		logger.Error("ReviewService:ToggleReaction:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to toggle reaction", err)
	}

	updated, err := s.repo.GetByID(ctx, reviewID)
	if err != nil || updated == nil {
		logger.Error("ReviewService:ToggleReaction:Reload:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get review", err)
	}

	userReaction := ""
	if current != reaction {
		userReaction = string(reaction)
	}

	return &dto.ReactionResponse{
		ReviewID:     reviewID,
		Likes:        updated.Likes,
		Dislikes:     updated.Dislikes,
		UserReaction: userReaction,
	}, nil
}
