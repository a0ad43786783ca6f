package repository

import (
	"context"
	"database/sql"
	"fmt"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/internship/entity"

	"github.com/google/uuid"
)

type InternshipRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedInternshipEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error)
	Save(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) error
	Unsave(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]entity.Internship, error)
}

type InternshipRepository struct {
	db database.IDatabase
}

func NewInternshipRepository(db database.IDatabase) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func (r *InternshipRepository) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedInternshipEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	baseQuery := `FROM internships`
	args := []any{}
	if queryParams.Search != "" {
		baseQuery += ` WHERE company ILIKE $1 OR role ILIKE $1`
		args = append(args, "%"+queryParams.Search+"%")
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...)
	if err != nil {
		logger.Error("InternshipRepository:List:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		baseQuery, len(args)+1, len(args)+2)
	args = append(args, queryParams.PageSize, offset)

	var internships []entity.Internship
	err = r.db.SelectContext(ctx, &internships, query, args...)
	if err != nil {
		logger.Error("InternshipRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedInternshipEntity{
		Items:      internships,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *InternshipRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Internship, error) {
	var internship entity.Internship
	err := r.db.GetContext(ctx, &internship, `SELECT * FROM internships WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("InternshipRepository:GetByID:Error:", err)
		return nil, err
	}
	return &internship, nil
}

func (r *InternshipRepository) Save(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) error {
	query := `
		INSERT INTO saved_internships (user_id, internship_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, internship_id) DO NOTHING
	`
	err := r.db.ExecContext(ctx, query, userID, internshipID)
	if err != nil {
		logger.Error("InternshipRepository:Save:Error:", err)
		return err
	}
	return nil
}

func (r *InternshipRepository) Unsave(ctx context.Context, userID uuid.UUID, internshipID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM saved_internships WHERE user_id = $1 AND internship_id = $2`,
		userID, internshipID)
	if err != nil {
		logger.Error("InternshipRepository:Unsave:Error:", err)
		return err
	}
	return nil
}

func (r *InternshipRepository) ListSaved(ctx context.Context, userID uuid.UUID) ([]entity.Internship, error) {
	query := `
		SELECT i.*
		FROM internships i
		JOIN saved_internships s ON s.internship_id = i.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`

	var internships []entity.Internship
	err := r.db.SelectContext(ctx, &internships, query, userID)
	if err != nil {
		logger.Error("InternshipRepository:ListSaved:Error:", err)
		return nil, err
	}
	return internships, nil
}
