package repository

import (
	"context"
	"database/sql"
	"fmt"

	"internhub/core/database"
	"internhub/core/logger"
	"internhub/core/params"
	"internhub/modules/job/entity"

	"github.com/google/uuid"
)

type JobRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedJobEntity, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)
	Save(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error
	Unsave(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error
	ListSaved(ctx context.Context, userID uuid.UUID) ([]entity.Job, error)
}

type JobRepository struct {
	db database.IDatabase
}

func NewJobRepository(db database.IDatabase) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) List(ctx context.Context, queryParams params.QueryParams) (*entity.PaginatedJobEntity, error) {
	offset := (queryParams.PageNumber - 1) * queryParams.PageSize

	baseQuery := `FROM jobs`
	args := []any{}
	if queryParams.Search != "" {
		baseQuery += ` WHERE company ILIKE $1 OR role ILIKE $1`
		args = append(args, "%"+queryParams.Search+"%")
	}

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, args...)
	if err != nil {
		logger.Error("JobRepository:List:Count:Error:", err)
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		baseQuery, len(args)+1, len(args)+2)
	args = append(args, queryParams.PageSize, offset)

	var jobs []entity.Job
	err = r.db.SelectContext(ctx, &jobs, query, args...)
	if err != nil {
		logger.Error("JobRepository:List:Select:Error:", err)
		return nil, err
	}

	return &entity.PaginatedJobEntity{
		Items:      jobs,
		TotalItems: totalItems,
		PageNumber: queryParams.PageNumber,
		PageSize:   queryParams.PageSize,
	}, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Job, error) {
	var job entity.Job
	err := r.db.GetContext(ctx, &job, `SELECT * FROM jobs WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("JobRepository:GetByID:Error:", err)
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) Save(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	query := `
		INSERT INTO saved_jobs (user_id, job_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, job_id) DO NOTHING
	`
	err := r.db.ExecContext(ctx, query, userID, jobID)
	if err != nil {
		logger.Error("JobRepository:Save:Error:", err)
		return err
	}
	return nil
}

func (r *JobRepository) Unsave(ctx context.Context, userID uuid.UUID, jobID uuid.UUID) error {
	err := r.db.ExecContext(ctx,
		`DELETE FROM saved_jobs WHERE user_id = $1 AND job_id = $2`,
		userID, jobID)
	if err != nil {
		logger.Error("JobRepository:Unsave:Error:", err)
		return err
	}
	return nil
}

func (r *JobRepository) ListSaved(ctx context.Context, userID uuid.UUID) ([]entity.Job, error) {
	query := `
		SELECT j.*
		FROM jobs j
		JOIN saved_jobs s ON s.job_id = j.id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC
	`

	var jobs []entity.Job
	err := r.db.SelectContext(ctx, &jobs, query, userID)
	if err != nil {
		logger.Error("JobRepository:ListSaved:Error:", err)
		return nil, err
	}
	return jobs, nil
}
