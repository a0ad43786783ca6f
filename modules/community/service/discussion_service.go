package service

import (
	"context"

	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/community/dto"
	"internhub/modules/community/entity"
	"internhub/modules/community/repository"

	"github.com/google/uuid"
)

type DiscussionServiceInterface interface {
	ListPosts(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedPostResponse, *errors.AppError)
	GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailResponse, *errors.AppError)
	CreatePost(ctx context.Context, userID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError)
	DeletePost(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError
	CreateReply(ctx context.Context, postID uuid.UUID, userID uuid.UUID, req *dto.CreateReplyRequest) (*dto.ReplyResponse, *errors.AppError)
	ToggleLikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, *errors.AppError)
	ToggleLikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, *errors.AppError)
}

type DiscussionService struct {
	repo repository.DiscussionRepositoryInterface
}

func NewDiscussionService(repo repository.DiscussionRepositoryInterface) *DiscussionService {
	return &DiscussionService{repo: repo}
}

func (s *DiscussionService) ListPosts(ctx context.Context, queryParams params.QueryParams) (*dto.PaginatedPostResponse, *errors.AppError) {
	page, err := s.repo.ListPosts(ctx, queryParams)
	if err != nil {
		logger.Error("DiscussionService:ListPosts:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list posts", err)
	}
	return dto.ToPaginatedPostResponse(page), nil
}

func (s *DiscussionService) GetPostBySlug(ctx context.Context, slug string) (*dto.PostDetailResponse, *errors.AppError) {
	post, err := s.repo.GetPostBySlug(ctx, slug)
	if err != nil {
		logger.Error("DiscussionService:GetPostBySlug:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get post", err)
	}
	if post == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Post not found", nil)
	}

	replies, err := s.repo.ListReplies(ctx, post.ID)
	if err != nil {
		logger.Error("DiscussionService:GetPostBySlug:Replies:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list replies", err)
	}

	return &dto.PostDetailResponse{
		PostResponse: *dto.ToPostResponse(post),
		ReplyList:    dto.ToReplyResponses(replies),
	}, nil
}

func (s *DiscussionService) CreatePost(ctx context.Context, userID uuid.UUID, req *dto.CreatePostRequest) (*dto.PostResponse, *errors.AppError) {
	if req.Title == "" || req.Content == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Title and content are required", nil)
	}

	postSlug, err := uniqueSlug(ctx, req.Title, s.repo.PostSlugExists)
	if err != nil {
		logger.Error("DiscussionService:CreatePost:Slug:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create post", err)
	}

	post := &entity.DiscussionPost{
		UserID:  userID,
		Title:   req.Title,
		Slug:    postSlug,
		Content: req.Content,
	}
	if err := s.repo.CreatePost(ctx, post); err != nil {
		logger.Error("DiscussionService:CreatePost:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create post", err)
	}

	return dto.ToPostResponse(&entity.DiscussionPostWithCounts{DiscussionPost: *post}), nil
}

func (s *DiscussionService) DeletePost(ctx context.Context, id uuid.UUID, userID uuid.UUID) *errors.AppError {
	if err := s.repo.DeletePost(ctx, id, userID); err != nil {
		logger.Error("DiscussionService:DeletePost:Error:", err)
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete post", err)
	}
	return nil
}

func (s *DiscussionService) CreateReply(ctx context.Context, postID uuid.UUID, userID uuid.UUID, req *dto.CreateReplyRequest) (*dto.ReplyResponse, *errors.AppError) {
	if req.Content == "" {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Content is required", nil)
	}

	reply := &entity.DiscussionReply{
		PostID:  postID,
		UserID:  userID,
		Content: req.Content,
	}
	if err := s.repo.CreateReply(ctx, reply); err != nil {
		logger.Error("DiscussionService:CreateReply:Error:", err)
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create reply", err)
	}

	return &dto.ReplyResponse{
		ID:        reply.ID,
		PostID:    reply.PostID,
		UserID:    reply.UserID,
		Content:   reply.Content,
		CreatedAt: reply.CreatedAt,
	}, nil
}

func (s *DiscussionService) ToggleLikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, *errors.AppError) {
	liked, err := s.repo.HasLikedPost(ctx, postID, userID)
	if err != nil {
		logger.Error("DiscussionService:ToggleLikePost:Has:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get like", err)
	}

	if liked {
		err = s.repo.UnlikePost(ctx, postID, userID)
	} else {
		err = s.repo.LikePost(ctx, postID, userID)
	}
	if err != nil {
		logger.Error("DiscussionService:ToggleLikePost:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to toggle like", err)
	}

	return &dto.LikeResponse{ID: postID, Liked: !liked}, nil
}

func (s *DiscussionService) ToggleLikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) (*dto.LikeResponse, *errors.AppError) {
	liked, err := s.repo.HasLikedReply(ctx, replyID, userID)
	if err != nil {
		logger.Error("DiscussionService:ToggleLikeReply:Has:Error:", err)
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get like", err)
	}

	if liked {
		err = s.repo.UnlikeReply(ctx, replyID, userID)
	} else {
		err = s.repo.LikeReply(ctx, replyID, userID)
	}
	if err != nil {
		logger.Error("DiscussionService:ToggleLikeReply:Error:", err)
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to toggle like", err)
	}

	return &dto.LikeResponse{ID: replyID, Liked: !liked}, nil
}
