// models/club_member.go
package models

import "time"

// ClubMember is always owned by exactly one club. Deleting the club
// removes its members as well.
type ClubMember struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Name     string    `json:"name" gorm:"not null;size:100"`
	Role     string    `json:"role" gorm:"not null;size:100"` // e.g. 'Club Head', 'Core Member', 'Team Member'
	ClubID   uint      `json:"club_id" gorm:"not null;index"`
	Club     *Club     `json:"club,omitempty" gorm:"foreignKey:ClubID"`
	JoinedAt time.Time `json:"joined_at"`
}

func (ClubMember) TableName() string {
	return "club_members"
}
