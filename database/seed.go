package database

import (
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin1234!"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "admin", Password: hashPassword, Name: "본사 관리자", Email: "admin@company.co.kr", Active: true, Role: constants.ROLE_SUPER_ADMIN},
		{Username: "growth", Password: hashPassword, Name: "로켓그로스 담당자", Email: "growth@company.co.kr", Active: true, Role: constants.ROLE_PARTNER, AssignedPartner: utils.Ptr("로켓그로스")},
		{Username: "smalldot", Password: hashPassword, Name: "스몰닷 담당자", Email: "smalldot@company.co.kr", Active: true, Role: constants.ROLE_PARTNER, AssignedPartner: utils.Ptr("스몰닷")},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}
}
