package models

import (
	"time"

	"gorm.io/gorm"
)

// Profile is a user's developer profile. At most one exists per user.
type Profile struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	UserID         uint     `gorm:"not null;uniqueIndex" json:"user_id"`
	User           User     `gorm:"foreignKey:UserID" json:"user"`
	Company        string   `json:"company,omitempty"`
	Website        string   `json:"website,omitempty"`
	Location       string   `json:"location,omitempty"`
	Status         string   `gorm:"not null" json:"status"`
	Skills         []string `gorm:"serializer:json" json:"skills"`
	Bio            string   `json:"bio,omitempty"`
	GithubUsername string   `json:"githubusername,omitempty"`

	// Social links, each optional.
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`

	// Most-recent-first child lists.
	Experience []Experience `gorm:"foreignKey:ProfileID" json:"experience"`
	Education  []Education  `gorm:"foreignKey:ProfileID" json:"education"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Experience is a work history entry on a profile.
type Experience struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	ProfileID   uint       `gorm:"not null;index" json:"-"`
	Title       string     `gorm:"not null" json:"title"`
	Company     string     `gorm:"not null" json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `gorm:"not null" json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Education is a schooling entry on a profile.
type Education struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ProfileID    uint       `gorm:"not null;index" json:"-"`
	School       string     `gorm:"not null" json:"school"`
	Degree       string     `gorm:"not null" json:"degree"`
	FieldOfStudy string     `gorm:"not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"not null" json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
