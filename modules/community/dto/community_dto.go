package dto

import (
	"time"

	"internhub/modules/community/entity"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	Company      string `json:"company" validate:"required"`
	Position     string `json:"position" validate:"required"`
	PositionType string `json:"position_type" validate:"required"`
	Rating       int    `json:"rating" validate:"required"`
	Review       string `json:"review" validate:"required"`
}

type ReviewResponse struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Company      string    `json:"company"`
	Position     string    `json:"position"`
	PositionType string    `json:"position_type"`
	Rating       int       `json:"rating"`
	Review       string    `json:"review"`
	Slug         string    `json:"slug"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	CreatedAt    time.Time `json:"created_at"`
}

type PaginatedReviewResponse struct {
	Items      []ReviewResponse `json:"items"`
	TotalItems int              `json:"total_items"`
	PageNumber int              `json:"page_number"`
	PageSize   int              `json:"page_size"`
}

// ReactionResponse reports the vote totals after a toggle, together with the
// caller's reaction ("" when none).
type ReactionResponse struct {
	ReviewID     uuid.UUID `json:"review_id"`
	Likes        int       `json:"likes"`
	Dislikes     int       `json:"dislikes"`
	UserReaction string    `json:"user_reaction"`
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type CreateReplyRequest struct {
	Content string `json:"content" validate:"required"`
}

type PostResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	Replies   int       `json:"replies"`
	CreatedAt time.Time `json:"created_at"`
}

type PaginatedPostResponse struct {
	Items      []PostResponse `json:"items"`
	TotalItems int            `json:"total_items"`
	PageNumber int            `json:"page_number"`
	PageSize   int            `json:"page_size"`
}

type ReplyResponse struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	UserID    uuid.UUID `json:"user_id"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

type PostDetailResponse struct {
	PostResponse
	ReplyList []ReplyResponse `json:"reply_list"`
}

// LikeResponse reports whether the caller now likes the target.
type LikeResponse struct {
	ID    uuid.UUID `json:"id"`
	Liked bool      `json:"liked"`
}

func ToReviewResponse(review *entity.ReviewWithReactions) *ReviewResponse {
	return &ReviewResponse{
		ID:           review.ID,
		UserID:       review.UserID,
		Company:      review.Company,
		Position:     review.Position,
		PositionType: string(review.PositionType),
		Rating:       review.Rating,
		Review:       review.Content,
		Slug:         review.Slug,
		Likes:        review.Likes,
		Dislikes:     review.Dislikes,
		CreatedAt:    review.CreatedAt,
	}
}

func ToPaginatedReviewResponse(page *entity.PaginatedReviewEntity) *PaginatedReviewResponse {
	items := make([]ReviewResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToReviewResponse(&page.Items[i]))
	}
	return &PaginatedReviewResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}

func ToPostResponse(post *entity.DiscussionPostWithCounts) *PostResponse {
	return &PostResponse{
		ID:        post.ID,
		UserID:    post.UserID,
		Title:     post.Title,
		Slug:      post.Slug,
		Content:   post.Content,
		Likes:     post.Likes,
		Replies:   post.Replies,
		CreatedAt: post.CreatedAt,
	}
}

func ToPaginatedPostResponse(page *entity.PaginatedDiscussionEntity) *PaginatedPostResponse {
	items := make([]PostResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *ToPostResponse(&page.Items[i]))
	}
	return &PaginatedPostResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}

func ToReplyResponses(replies []entity.DiscussionReplyWithCounts) []ReplyResponse {
	result := make([]ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		result = append(result, ReplyResponse{
			ID:        reply.ID,
			PostID:    reply.PostID,
			UserID:    reply.UserID,
			Content:   reply.Content,
			Likes:     reply.Likes,
			CreatedAt: reply.CreatedAt,
		})
	}
	return result
}
