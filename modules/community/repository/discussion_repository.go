package repository

import (
	"context"
	"database/sql"
	"fmt"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/community/entity"

	"github.com/google/uuid"
)

type DiscussionRepositoryInterface interface {
	ListPosts(ctx context.Context, params params.QueryParams) (*entity.PaginatedDiscussionEntity, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.DiscussionPostWithCounts, error)
	CreatePost(ctx context.Context, post *entity.DiscussionPost) error
	DeletePost(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	PostSlugExists(ctx context.Context, slug string) (bool, error)
	ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.DiscussionReplyWithCounts, error)
	CreateReply(ctx context.Context, reply *entity.DiscussionReply) error
	HasLikedPost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error)
	LikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	UnlikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error
	HasLikedReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) (bool, error)
	LikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) error
	UnlikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) error
}

type DiscussionRepository struct {
	db database.IDatabase
}

func NewDiscussionRepository(db database.IDatabase) *DiscussionRepository {
	return &DiscussionRepository{db: db}
}

const postSelect = `
	SELECT p.*,
		(SELECT COUNT(*) FROM discussion_post_likes WHERE post_id = p.id) AS likes,
		(SELECT COUNT(*) FROM discussion_replies WHERE post_id = p.id) AS replies
	FROM discussion_posts p
`

func (r *DiscussionRepository) ListPosts(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedDiscussionEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	where := ``
	args := []any{}
	if queryParams.Search != "" {
		where = ` WHERE p.title ILIKE $1`
		args = append(args, "%"+queryParams.Search+"%")
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) FROM discussion_posts p"+where, args...)
	if err != nil {
		logger.Error("DiscussionRepository:ListPosts:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(`%s%s ORDER BY p.created_at DESC LIMIT $%d OFFSET $%d`,
		postSelect, where, len(args)+1, len(args)+2)
	args = append(args, queryParams.PageSize, offset)

	var posts []entity.DiscussionPostWithCounts
	err = r.db.SelectContext(ctx, &posts, query, args...)
	if err != nil {
		logger.Error("DiscussionRepository:ListPosts:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedDiscussionEntity{
		Items:      posts,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *DiscussionRepository) GetPostBySlug(ctx context.Context, slug string) (*entity.DiscussionPostWithCounts, error) {
	var post entity.DiscussionPostWithCounts
	err := r.db.GetContext(ctx, &post, postSelect+` WHERE p.slug = $1`, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("DiscussionRepository:GetPostBySlug:Error:", err)
		return nil, err
	}
	return &post, nil
}

func (r *DiscussionRepository) CreatePost(ctx context.Context, post *entity.DiscussionPost) error {
	query := `
		INSERT INTO discussion_posts (user_id, title, slug, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		post.UserID, post.Title, post.Slug, post.Content,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		logger.Error("DiscussionRepository:CreatePost:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) DeletePost(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM discussion_posts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error("DiscussionRepository:DeletePost:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) PostSlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM discussion_posts WHERE slug = $1)`, slug)
	if err != nil {
		logger.Error("DiscussionRepository:PostSlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *DiscussionRepository) ListReplies(ctx context.Context, postID uuid.UUID) ([]entity.DiscussionReplyWithCounts, error) {
	query := `
		SELECT rp.*,
			(SELECT COUNT(*) FROM discussion_reply_likes WHERE reply_id = rp.id) AS likes
		FROM discussion_replies rp
		WHERE rp.post_id = $1
		ORDER BY rp.created_at ASC
	`

	var replies []entity.DiscussionReplyWithCounts
	err := r.db.SelectContext(ctx, &replies, query, postID)
	if err != nil {
		logger.Error("DiscussionRepository:ListReplies:Error:", err)
		return nil, err
	}
	return replies, nil
}

func (r *DiscussionRepository) CreateReply(ctx context.Context, reply *entity.DiscussionReply) error {
	query := `
		INSERT INTO discussion_replies (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		reply.PostID, reply.UserID, reply.Content,
	).Scan(&reply.ID, &reply.CreatedAt, &reply.UpdatedAt)
	if err != nil {
		logger.Error("DiscussionRepository:CreateReply:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) HasLikedPost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM discussion_post_likes WHERE post_id = $1 AND user_id = $2)`,
		postID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:HasLikedPost:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *DiscussionRepository) LikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	query := `
		INSERT INTO discussion_post_likes (post_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (post_id, user_id) DO NOTHING
	`
	err := r.db.ExecContext(ctx, query, postID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:LikePost:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) UnlikePost(ctx context.Context, postID uuid.UUID, userID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM discussion_post_likes WHERE post_id = $1 AND user_id = $2`,
		postID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:UnlikePost:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) HasLikedReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM discussion_reply_likes WHERE reply_id = $1 AND user_id = $2)`,
		replyID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:HasLikedReply:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *DiscussionRepository) LikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) error {
	query := `
		INSERT INTO discussion_reply_likes (reply_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (reply_id, user_id) DO NOTHING
	`
	err := r.db.ExecContext(ctx, query, replyID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:LikeReply:Error:", err)
		return err
	}
	return nil
}

func (r *DiscussionRepository) UnlikeReply(ctx context.Context, replyID uuid.UUID, userID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM discussion_reply_likes WHERE reply_id = $1 AND user_id = $2`,
		replyID, userID)
	if err != nil {
		logger.Error("DiscussionRepository:UnlikeReply:Error:", err)
		return err
	}
	return nil
}
