package entity

import (
	"internhub/core/entity"
)

// WorkMode is where a job is carried out. Jobs additionally allow hybrid.
type WorkMode string

const (
	WorkModeOffline WorkMode = "offline"
	WorkModeOnline  WorkMode = "online"
	WorkModeHybrid  WorkMode = "hybrid"
)

type Job struct {
	Company     string   `db:"company" json:"company"`
	Role        string   `db:"role" json:"role"`
	Mode        WorkMode `db:"mode" json:"mode"`
	Description string   `db:"description" json:"description"`
	ApplyLink   string   `db:"apply_link" json:"apply_link"`
	entity.BaseEntity
}

type PaginatedJobEntity = entity.Pagination[Job]
