package handler

import (
	"errors"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetMyMessages 로그인 계정의 쪽지함
func GetMyMessages(c *fiber.Ctx) error {
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	var messages []model.Message
	if err := database.DB.
		Where("receiver_id = ?", claim.AccountId).
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, messages)
}

// GetNotifications 알림 목록. 협력사 계정은 자기 주문처 대상 알림만 본다.
func GetNotifications(c *fiber.Ctx) error {
	claim, isSuperAdmin, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	query := database.DB.Model(&model.Notification{})
	if isSuperAdmin || isAdmin {
		query = query.Where("target_type = ?", "HEADQUARTERS")
	} else if claim.AssignedPartner != nil {
		query = query.Where("target_type = ? AND target_partner = ?", "PARTNER", *claim.AssignedPartner)
	}

	unreadOnly := c.QueryBool("unread", false)
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var notifications []model.Notification
	if err := query.Order("created_at desc").Limit(100).Find(&notifications).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notifications)
}

func MarkNotificationRead(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var notification model.Notification
	if err := db.First(&notification, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "알림을 찾을 수 없습니다", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notification.IsRead = true
	if err := db.Save(&notification).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, notification)
}

func MarkMessageRead(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	claim, _, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil
	}

	db := database.DB
	var message model.Message
	if err := db.Where("receiver_id = ?", claim.AccountId).First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "쪽지를 찾을 수 없습니다", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	message.IsRead = true
	if err := db.Save(&message).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, message)
}
