package entity

import (
	"internhub/core/entity"
)

// WorkMode is where an internship or job is carried out.
type WorkMode string

const (
	WorkModeOffline WorkMode = "offline"
	WorkModeOnline  WorkMode = "online"
)

type Internship struct {
	Company     string   `db:"company" json:"company"`
	Role        string   `db:"role" json:"role"`
	Period      string   `db:"period" json:"period"`
	Mode        WorkMode `db:"mode" json:"mode"`
	Description string   `db:"description" json:"description"`
	ApplyLink   string   `db:"apply_link" json:"apply_link"`
	entity.BaseEntity
}

type PaginatedInternshipEntity = entity.Pagination[Internship]
