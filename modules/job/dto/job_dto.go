package dto

import (
	"time"

	"internhub/modules/job/entity"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Mode        string    `json:"mode"`
	Description string    `json:"description,omitempty"`
	ApplyLink   string    `json:"apply_link"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaginatedJobResponse struct {
	Items      []JobResponse `json:"items"`
	TotalItems int           `json:"total_items"`
	PageNumber int           `json:"page_number"`
	PageSize   int           `json:"page_size"`
}

func ToJobResponse(job *entity.Job) *JobResponse {
	return &JobResponse{
		ID:          job.ID,
		Company:     job.Company,
		Role:        job.Role,
		Mode:        string(job.Mode),
		Description: job.Description,
		ApplyLink:   job.ApplyLink,
		CreatedAt:   job.CreatedAt,
	}
}

func ToJobResponses(jobs []entity.Job) []JobResponse {
	result := make([]JobResponse, 0, len(jobs))
	for i := range jobs {
		result = append(result, *ToJobResponse(&jobs[i]))
	}
	return result
}

func ToPaginatedJobResponse(page *entity.PaginatedJobEntity) *PaginatedJobResponse {
	return &PaginatedJobResponse{
		Items:      ToJobResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
