package dto

import (
	"time"

	"internhub/modules/internship/entity"

	"github.com/google/uuid"
)

type InternshipResponse struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Period      string    `json:"period"`
	Mode        string    `json:"mode"`
	Description string    `json:"description,omitempty"`
	ApplyLink   string    `json:"apply_link"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaginatedInternshipResponse struct {
	Items      []InternshipResponse `json:"items"`
	TotalItems int                  `json:"total_items"`
	PageNumber int                  `json:"page_number"`
	PageSize   int                  `json:"page_size"`
}

func ToInternshipResponse(internship *entity.Internship) *InternshipResponse {
	return &InternshipResponse{
		ID:          internship.ID,
		Company:     internship.Company,
		Role:        internship.Role,
		Period:      internship.Period,
		Mode:        string(internship.Mode),
		Description: internship.Description,
		ApplyLink:   internship.ApplyLink,
		CreatedAt:   internship.CreatedAt,
	}
}

func ToInternshipResponses(internships []entity.Internship) []InternshipResponse {
	result := make([]InternshipResponse, 0, len(internships))
	for i := range internships {
		result = append(result, *ToInternshipResponse(&internships[i]))
	}
	return result
}

func ToPaginatedInternshipResponse(page *entity.PaginatedInternshipEntity) *PaginatedInternshipResponse {
	return &PaginatedInternshipResponse{
		Items:      ToInternshipResponses(page.Items),
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}
}
