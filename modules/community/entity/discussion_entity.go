package entity

import (
	"internhub/core/entity"

	"github.com/google/uuid"
)

type DiscussionPost struct {
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Title   string    `db:"title" json:"title"`
	Slug    string    `db:"slug" json:"slug"`
	Content string    `db:"content" json:"content"`
	entity.BaseEntity
}

// DiscussionPostWithCounts joins a post with its like and reply totals.
type DiscussionPostWithCounts struct {
	DiscussionPost
	Likes   int `db:"likes" json:"likes"`
	Replies int `db:"replies" json:"replies"`
}

type DiscussionReply struct {
	PostID  uuid.UUID `db:"post_id" json:"post_id"`
	UserID  uuid.UUID `db:"user_id" json:"user_id"`
	Content string    `db:"content" json:"content"`
	entity.BaseEntity
}

type DiscussionReplyWithCounts struct {
	DiscussionReply
	Likes int `db:"likes" json:"likes"`
}

type PaginatedDiscussionEntity = entity.Pagination[DiscussionPostWithCounts]
