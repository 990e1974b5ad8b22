package handler

import (
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// GetOrderValidation 전체 주문 필드 검증 결과.
// 저장하지 않고 매번 새로 계산한다 (주문이 수정되면 다음 조회에 바로 반영).
func GetOrderValidation(c *fiber.Ctx) error {
	scope := partnerScopeFromLocals(c)

	var orders []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope).
		Where("status <> ?", constants.ORDER_CANCELLED)
	if err := query.Order("created_at asc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	defects := helper.ValidateOrders(orders)

	byType := map[string]int{}
	for _, d := range defects {
		byType[d.ErrorType]++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"totalOrders": len(orders),
		"errorCount":  len(defects),
		"byType":      byType,
		"errors":      defects,
	})
}
