package validate

import (
	"fmt"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.RecipientName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "고객명은 필수입니다",
				"field": "recipientName",
			})
		}

		// 전화번호는 형식만 빠르게 확인 (누락 허용, 상세 검증은 검증 화면에서)
		if input.RecipientPhone != "" && !helper.IsAcceptedPhone(input.RecipientPhone) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "전화번호 형식이 올바르지 않습니다 (예: 02-1234-5678)",
				"field": "recipientPhone",
			})
		}
		if input.RecipientMobile != "" && !helper.IsAcceptedPhone(input.RecipientMobile) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "휴대전화 형식이 올바르지 않습니다 (예: 010-1234-5678)",
				"field": "recipientMobile",
			})
		}

		if input.BasePrice < 0 || input.ShippingFee < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "금액은 0 이상이어야 합니다",
				"field": "basePrice",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateOrder", input)

		return c.Next()
	}
}

func UpdateDelivery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateDeliveryInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.Courier == "" || input.TrackingNumber == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "택배사와 운송장번호를 모두 입력해주세요",
				"field": "trackingNumber",
			})
		}

		c.Locals("inputUpdateDelivery", input)

		return c.Next()
	}
}
