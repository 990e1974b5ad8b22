package validate

import (
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/model"
	"slices"

	"github.com/gofiber/fiber/v2"
)

func CreateAfterService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAfterServiceInput

		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if input.CustomerName == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "고객명은 필수입니다",
				"field": "customerName",
			})
		}

		if input.Status != "" && !slices.Contains(constants.AsStatuses, input.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "처리상태 값이 올바르지 않습니다",
				"field": "status",
			})
		}

		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		c.Locals("inputCreateAfterService", input)

		return c.Next()
	}
}

// BulkAfterService 다건 등록. 검증은 행 단위로 하지 않고 핸들러에서 건별 격리 처리한다.
func BulkAfterService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var inputs []model.CreateAfterServiceInput

		if err := c.BodyParser(&inputs); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if len(inputs) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "등록할 AS 건이 없습니다",
			})
		}

		c.Locals("inputBulkAfterService", inputs)

		return c.Next()
	}
}
