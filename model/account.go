package model

type Account struct {
	DTO
	Username        string  `gorm:"unique;size:50" json:"username"`
	Password        string  `json:"-"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`                           // SUPER_ADMIN, ADMIN, PARTNER
	AssignedPartner *string `gorm:"size:50" json:"assignedPartner"` // NULL = 전체 조회 가능
	Active          bool    `json:"active"`
}
