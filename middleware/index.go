package middleware

import (
	"errors"
	"fulfillment_admin/helper"
	"fulfillment_admin/utils"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("access_token")

		if token == "" {
			// Authorization: Bearer xxx 헤더도 허용
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, 401, "로그인이 필요합니다", errors.New("no token"))
		}

		jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, 401, "유효하지 않은 토큰입니다", err)
		}

		c.Locals("user", jwtToken)
		return c.Next()
	}
}

func OptionalJWT() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		if authHeader == "" {
			c.Locals("user", nil)
			return c.Next()
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.Locals("user", nil)
			return c.Next()
		}

		c.Locals("user", token)
		return c.Next()
	}
}

// PartnerScope 계정 정보를 읽어 조회 가능 주문처를 Locals에 넣는다.
// 협력사 계정이 아니면 nil (전체 조회).
func PartnerScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, _, _, _ := helper.GetInfoAccountFromToken(c)
		if claim.AccountId == 0 {
			// GetInfoAccountFromToken이 이미 응답을 작성함
			return nil
		}

		c.Locals("accountClaim", claim)
		c.Locals("partnerScope", helper.PartnerScope(claim))
		return c.Next()
	}
}

// AdminOnly 협력사 계정은 차단
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isSuperAdmin, isAdmin, _ := helper.GetInfoAccountFromToken(c)
		if !isSuperAdmin && !isAdmin {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "관리자만 사용할 수 있습니다", errors.New("forbidden"))
		}
		return c.Next()
	}
}
