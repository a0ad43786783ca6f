package service

import (
	"context"
	"testing"

	"internhub/core/params"
	"internhub/modules/community/dto"
	"internhub/modules/community/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReviewRepo struct {
	reviews   map[uuid.UUID]*entity.Review
	reactions map[uuid.UUID]map[uuid.UUID]entity.ReactionType
	slugs     map[string]bool
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{
		reviews:   map[uuid.UUID]*entity.Review{},
		reactions: map[uuid.UUID]map[uuid.UUID]entity.ReactionType{},
		slugs:     map[string]bool{},
	}
}

func (f *fakeReviewRepo) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedReviewEntity, error) {
	items := make([]entity.ReviewWithReactions, 0, len(f.reviews))
	for id := range f.reviews {
		review, _ := f.GetByID(ctx, id)
		items = append(items, *review)
	}
	return &entity.PaginatedReviewEntity{
		Items:      items,
		TotalItems: len(items),
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (f *fakeReviewRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.ReviewWithReactions, error) {
	review, ok := f.reviews[id]
	if !ok {
		return nil, nil
	}
	out := entity.ReviewWithReactions{Review: *review}
	for _, reaction := range f.reactions[id] {
		if reaction == entity.ReactionLike {
			out.Likes++
		} else {
			out.Dislikes++
		}
	}
	return &out, nil
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	review.ID = uuid.New()
	f.reviews[review.ID] = review
	f.slugs[review.Slug] = true
	return nil
}

func (f *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID, userID uuid.UUID) error {
	if review, ok := f.reviews[id]; ok && review.UserID == userID {
		delete(f.reviews, id)
	}
	return nil
}

func (f *fakeReviewRepo) SlugExists(_ context.Context, slug string) (bool, error) {
	return f.slugs[slug], nil
}

func (f *fakeReviewRepo) GetReaction(_ context.Context, reviewID uuid.UUID, userID uuid.UUID) (entity.ReactionType, error) {
	return f.reactions[reviewID][userID], nil
}

func (f *fakeReviewRepo) SetReaction(_ context.Context, reviewID uuid.UUID, userID uuid.UUID, reaction entity.ReactionType) error {
	if f.reactions[reviewID] == nil {
		f.reactions[reviewID] = map[uuid.UUID]entity.ReactionType{}
	}
	f.reactions[reviewID][userID] = reaction
	return nil
}

func (f *fakeReviewRepo) ClearReaction(_ context.Context, reviewID uuid.UUID, userID uuid.UUID) error {
	delete(f.reactions[reviewID], userID)
	return nil
}

func createTestReview(t *testing.T, svc *ReviewService, userID uuid.UUID) *dto.ReviewResponse {
	t.Helper()
	review, appErr := svc.CreateReview(context.Background(), userID, &dto.CreateReviewRequest{
		Company:      "Acme",
		Position:     "Backend Intern",
		PositionType: "internship",
		Rating:       4,
		Review:       "Great mentorship",
	})
	require.Nil(t, appErr)
	return review
}

func TestCreateReviewValidation(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	userID := uuid.New()

	cases := []struct {
		name string
		req  dto.CreateReviewRequest
	}{
		{"bad position type", dto.CreateReviewRequest{Company: "Acme", Position: "Intern", PositionType: "contract", Rating: 3, Review: "ok"}},
		{"rating too low", dto.CreateReviewRequest{Company: "Acme", Position: "Intern", PositionType: "internship", Rating: 0, Review: "ok"}},
		{"rating too high", dto.CreateReviewRequest{Company: "Acme", Position: "Intern", PositionType: "job", Rating: 6, Review: "ok"}},
		{"missing company", dto.CreateReviewRequest{Position: "Intern", PositionType: "internship", Rating: 3, Review: "ok"}},
		{"missing review", dto.CreateReviewRequest{Company: "Acme", Position: "Intern", PositionType: "internship", Rating: 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, appErr := svc.CreateReview(context.Background(), userID, &tc.req)
			require.NotNil(t, appErr)
		})
	}
}

func TestToggleReactionAddsAndRemoves(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	userID := uuid.New()
	review := createTestReview(t, svc, userID)

	result, appErr := svc.ToggleReaction(context.Background(), review.ID, userID, entity.ReactionLike)
	require.Nil(t, appErr)
	assert.Equal(t, 1, result.Likes)
	assert.Equal(t, "like", result.UserReaction)

	// Same reaction again removes it.
	result, appErr = svc.ToggleReaction(context.Background(), review.ID, userID, entity.ReactionLike)
	require.Nil(t, appErr)
	assert.Equal(t, 0, result.Likes)
	assert.Equal(t, "", result.UserReaction)
}

func TestToggleReactionIsMutuallyExclusive(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	userID := uuid.New()
	review := createTestReview(t, svc, userID)

	_, appErr := svc.ToggleReaction(context.Background(), review.ID, userID, entity.ReactionLike)
	require.Nil(t, appErr)

	// Switching to dislike replaces the like.
	result, appErr := svc.ToggleReaction(context.Background(), review.ID, userID, entity.ReactionDislike)
	require.Nil(t, appErr)
	assert.Equal(t, 0, result.Likes)
	assert.Equal(t, 1, result.Dislikes)
	assert.Equal(t, "dislike", result.UserReaction)
}

func TestToggleReactionCountsPerUser(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	author := uuid.New()
	review := createTestReview(t, svc, author)

	_, appErr := svc.ToggleReaction(context.Background(), review.ID, uuid.New(), entity.ReactionLike)
	require.Nil(t, appErr)
	result, appErr := svc.ToggleReaction(context.Background(), review.ID, uuid.New(), entity.ReactionLike)
	require.Nil(t, appErr)

	assert.Equal(t, 2, result.Likes)
}

func TestToggleReactionRejectsUnknownReaction(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())
	userID := uuid.New()
	review := createTestReview(t, svc, userID)

	_, appErr := svc.ToggleReaction(context.Background(), review.ID, userID, entity.ReactionType("love"))
	require.NotNil(t, appErr)
}

func TestToggleReactionMissingReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo())

	_, appErr := svc.ToggleReaction(context.Background(), uuid.New(), uuid.New(), entity.ReactionLike)
	require.NotNil(t, appErr)
}
