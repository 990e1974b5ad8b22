package helper

import (
	"errors"
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var JwtSecret = []byte(os.Getenv("JWT_SECRET"))

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func GetAccountByUsername(u string) (*model.Account, error) {
	db := database.DB
	var account model.Account
	if err := db.Where(&model.Account{Username: u}).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["role"] = tokenClaim.Role
	if tokenClaim.AssignedPartner != nil {
		claims["assignedPartner"] = *tokenClaim.AssignedPartner
	}
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func GenerateRefreshToken(tokenClaim model.TokenClaim) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["accountId"] = tokenClaim.AccountId
	claims["exp"] = time.Now().Add(time.Hour * 24 * 7).Unix()

	t, err := token.SignedString(JwtSecret)
	return t, err
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// HMAC 서명 알고리즘만 허용
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return JwtSecret, nil
	})

	return token, err
}

// GetInfoAccountFromToken 토큰에서 계정 정보를 조회한다.
// 반환값: 계정 정보, 총괄관리자 여부, 관리자 여부, 협력사 계정 여부
func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool, bool, bool) {
	token := c.Locals("user").(*jwt.Token)
	tokenClaim := token.Claims.(jwt.MapClaims)
	accountId := uint(tokenClaim["accountId"].(float64))
	username := tokenClaim["username"].(string)

	var account model.Account
	db := database.DB
	if err := db.First(&account, accountId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("account not found: id=%d", accountId)
			utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_USERNAME, err)
		} else {
			log.Printf("account query error: id=%d, error=%v", accountId, err)
			utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		return model.TokenClaim{}, false, false, false
	}

	accountInfo := model.TokenClaim{
		AccountId:       accountId,
		Username:        username,
		Role:            account.Role,
		AssignedPartner: account.AssignedPartner,
	}

	return accountInfo,
		account.Role == constants.ROLE_SUPER_ADMIN,
		account.Role == constants.ROLE_ADMIN,
		account.Role == constants.ROLE_PARTNER
}

// PartnerScope 계정이 조회할 수 있는 고객주문처명.
// nil이면 전체 조회 가능 (본사 계정 또는 협력사 미지정).
func PartnerScope(claim model.TokenClaim) *string {
	if claim.Role == constants.ROLE_PARTNER && claim.AssignedPartner != nil {
		return claim.AssignedPartner
	}
	return nil
}

// ScopeOrderQuery 협력사 계정이면 자기 주문처 데이터만 보이게 쿼리를 좁힌다.
func ScopeOrderQuery(query *gorm.DB, claim model.TokenClaim) *gorm.DB {
	if scope := PartnerScope(claim); scope != nil {
		return query.Where("order_source = ?", *scope)
	}
	return query
}
