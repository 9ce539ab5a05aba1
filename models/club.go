// models/club.go
package models

import "time"

type Club struct {
	ID              uint         `json:"id" gorm:"primaryKey"`
	Name            string       `json:"name" gorm:"uniqueIndex;not null;size:100"`
	LogoURL         string       `json:"logo_url" gorm:"size:200"`
	MembersCount    int          `json:"members_count" gorm:"default:0"`
	Description     string       `json:"description" gorm:"type:text"`
	IsRecruiting    bool         `json:"is_recruiting" gorm:"default:false"`
	ApplicationLink string       `json:"application_link" gorm:"size:300"`
	WhyJoinReasons  StringList   `json:"why_join_reasons" gorm:"type:text"`
	GalleryImages   StringList   `json:"gallery_images" gorm:"type:text"`
	Members         []ClubMember `json:"members,omitempty" gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (Club) TableName() string {
	return "clubs"
}
