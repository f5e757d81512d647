package models

import "time"

// Project is a portfolio entry managed from the back office.
type Project struct {
	ID           uint         `json:"id" db:"id" gorm:"primaryKey"`
	Title        string       `json:"title" db:"title" gorm:"type:varchar(150);not null;uniqueIndex:idx_projects_title"`
	Slug         string       `json:"slug" db:"slug" gorm:"type:varchar(180);not null;index:idx_projects_slug"`
	Description  *string      `json:"description,omitempty" db:"description" gorm:"type:text"`
	GithubLink   *string      `json:"github_link,omitempty" db:"github_link" gorm:"type:text"`
	DemoLink     *string      `json:"demo_link,omitempty" db:"demo_link" gorm:"type:text"`
	Image        *string      `json:"image,omitempty" db:"image" gorm:"type:text"`
	ImageURL     string       `json:"image_url,omitempty" gorm:"-"`
	TypeID       *uint        `json:"type_id,omitempty" db:"type_id" gorm:"index:idx_projects_type_id"`
	Type         *Type        `json:"type,omitempty" gorm:"foreignKey:TypeID;references:ID;constraint:OnDelete:SET NULL"`
	Technologies []Technology `json:"technologies" gorm:"many2many:project_technology;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// HasImage reports whether a stored image is attached.
func (p *Project) HasImage() bool {
	return p.Image != nil && *p.Image != ""
}

// TechnologyIDs returns the ids of the loaded technologies in load order.
func (p *Project) TechnologyIDs() []uint {
	ids := make([]uint, 0, len(p.Technologies))
	for _, t := range p.Technologies {
		ids = append(ids, t.ID)
	}
	return ids
}
