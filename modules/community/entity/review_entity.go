package entity

import (
	"internhub/core/entity"

	"github.com/google/uuid"
)

// PositionType distinguishes internship reviews from job reviews.
type PositionType string

const (
	PositionTypeInternship PositionType = "internship"
	PositionTypeJob        PositionType = "job"
)

// ReactionType is a user's vote on a review. A user holds at most one
// reaction per review.
type ReactionType string

const (
	ReactionLike    ReactionType = "like"
	ReactionDislike ReactionType = "dislike"
)

type Review struct {
	UserID       uuid.UUID    `db:"user_id" json:"user_id"`
	Company      string       `db:"company" json:"company"`
	Position     string       `db:"position" json:"position"`
	PositionType PositionType `db:"position_type" json:"position_type"`
	Rating       int          `db:"rating" json:"rating"`
	Content      string       `db:"review" json:"review"`
	Slug         string       `db:"slug" json:"slug"`
	entity.BaseEntity
}

// ReviewWithReactions joins a review with its aggregated vote counts.
type ReviewWithReactions struct {
	Review
	Likes    int `db:"likes" json:"likes"`
	Dislikes int `db:"dislikes" json:"dislikes"`
}

type PaginatedReviewEntity = entity.Pagination[ReviewWithReactions]
