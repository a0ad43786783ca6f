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

type ReviewRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedReviewEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithReactions, error)
	Create(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	SlugExists(ctx context.Context, slug string) (bool, error)
	GetReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID) (entity.ReactionType, error)
	SetReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID, reaction entity.ReactionType) error
	ClearReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID) error
}

type ReviewRepository struct {
	db database.IDatabase
}

func NewReviewRepository(db database.IDatabase) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewSelect = `
	SELECT r.*,
		(SELECT COUNT(*) FROM review_reactions WHERE review_id = r.id AND reaction = 'like') AS likes,
		(SELECT COUNT(*) FROM review_reactions WHERE review_id = r.id AND reaction = 'dislike') AS dislikes
	FROM reviews r
`

func (r *ReviewRepository) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedReviewEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	where := ``
	args := []any{}
	if queryParams.Search != "" {
		where = ` WHERE r.company ILIKE $1 OR r.position ILIKE $1`
		args = append(args, "%"+queryParams.Search+"%")
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) FROM reviews r"+where, args...)
	if err != nil {
		logger.Error("ReviewRepository:List:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(`%s%s ORDER BY r.created_at DESC LIMIT $%d OFFSET $%d`,
		reviewSelect, where, len(args)+1, len(args)+2)
	args = append(args, queryParams.PageSize, offset)

	var reviews []entity.ReviewWithReactions
	err = r.db.SelectContext(ctx, &reviews, query, args...)
	if err != nil {
		logger.Error("ReviewRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedReviewEntity{
		Items:      reviews,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithReactions, error) {
	var review entity.ReviewWithReactions
	err := r.db.GetContext(ctx, &review, reviewSelect+` WHERE r.id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("ReviewRepository:GetByID:Error:", err)
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (user_id, company, position, position_type, rating, review, slug)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		review.UserID, review.Company, review.Position, review.PositionType,
		review.Rating, review.Content, review.Slug,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		logger.Error("ReviewRepository:Create:Error:", err)
		return err
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM reviews WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		logger.Error("ReviewRepository:Delete:Error:", err)
		return err
	}
	return nil
}

func (r *ReviewRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM reviews WHERE slug = $1)`, slug)
	if err != nil {
		logger.Error("ReviewRepository:SlugExists:Error:", err)
		return false, err
	}
	return exists, nil
}

func (r *ReviewRepository) GetReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID) (entity.ReactionType, error) {
	var reaction entity.ReactionType
	err := r.db.GetContext(ctx, &reaction,
		`SELECT reaction FROM review_reactions WHERE review_id = $1 AND user_id = $2`,
		reviewID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		logger.Error("ReviewRepository:GetReaction:Error:", err)
		return "", err
	}
	return reaction, nil
}

func (r *ReviewRepository) SetReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID, reaction entity.ReactionType) error {
	query := `
		INSERT INTO review_reactions (review_id, user_id, reaction)
		VALUES ($1, $2, $3)
		ON CONFLICT (review_id, user_id) DO UPDATE SET reaction = EXCLUDED.reaction
	`
	err := r.db.ExecContext(ctx, query, reviewID, userID, reaction)
	if err != nil {
		logger.Error("ReviewRepository:SetReaction:Error:", err)
		return err
	}
	return nil
}

func (r *ReviewRepository) ClearReaction(ctx context.Context, reviewID uuid.UUID, userID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM review_reactions WHERE review_id = $1 AND user_id = $2`,
		reviewID, userID)
	if err != nil {
		logger.Error("ReviewRepository:ClearReaction:Error:", err)
		return err
	}
	return nil
}
