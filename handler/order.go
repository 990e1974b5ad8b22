package handler

import (
	"errors"
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func partnerScopeFromLocals(c *fiber.Ctx) *string {
	scope, _ := c.Locals("partnerScope").(*string)
	return scope
}

func scopeOrders(query *gorm.DB, scope *string) *gorm.DB {
	if scope != nil {
		return query.Where("order_source = ?", *scope)
	}
	return query
}

// GetAllOrders 주문 목록 (페이지네이션 + 상태/주문처/검색 필터, 협력사 스코프 적용)
func GetAllOrders(c *fiber.Ctx) error {
	db := database.DB
	scope := partnerScopeFromLocals(c)

	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)
	status := c.Query("status")
	orderSource := c.Query("orderSource")
	search := c.Query("search")

	query := scopeOrders(db.Model(&model.Order{}), scope)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if orderSource != "" && scope == nil {
		query = query.Where("order_source = ?", orderSource)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("recipient_name LIKE ? OR order_number LIKE ? OR recipient_phone LIKE ? OR recipient_mobile LIKE ?",
			like, like, like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var orders []model.Order
	paged := utils.ApplyPagination(query, intPtrOrNil(limit), intPtrOrNil(page))
	if err := paged.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       orders,
		Limit:      intPtrOrNil(limit),
		Page:       intPtrOrNil(page),
		TotalCount: totalCount,
	})
}

func intPtrOrNil(v int) *int {
	if v <= 0 {
		return nil
	}
	return &v
}

// GetPendingDeliveryOrders 운송장 미등록 대기 주문 (배송정보 화면 좌측 목록)
func GetPendingDeliveryOrders(c *fiber.Ctx) error {
	scope := partnerScopeFromLocals(c)

	var orders []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope).
		Where("status = ? AND (tracking_number = '' OR courier = '')", constants.ORDER_PENDING)
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

// GetOrdersWithTracking 운송장 등록 완료 주문 (최종 송부 대상)
func GetOrdersWithTracking(c *fiber.Ctx) error {
	scope := partnerScopeFromLocals(c)

	var orders []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope).
		Where("tracking_number <> '' AND courier <> ''")
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func GetOrderById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	scope := partnerScopeFromLocals(c)

	var order model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope)
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func applyOrderInput(order *model.Order, input model.CreateOrderInput) {
	normalized := utils.ParseFlexibleDate(input.OrderDate)
	if t, err := time.Parse("2006-01-02", normalized); err == nil {
		order.OrderDate = utils.CustomDate{Time: t}
	}

	order.RecipientName = strings.TrimSpace(input.RecipientName)
	order.RecipientPhone = strings.TrimSpace(input.RecipientPhone)
	order.RecipientMobile = strings.TrimSpace(input.RecipientMobile)
	order.RecipientZipCode = strings.TrimSpace(input.RecipientZipCode)
	order.RecipientAddr = strings.TrimSpace(input.RecipientAddr)
	order.ProductInfo = input.ProductInfo
	order.DeliveryMsg = input.DeliveryMsg
	order.BasePrice = input.BasePrice
	order.ShippingFee = input.ShippingFee
	order.TotalAmount = input.BasePrice + input.ShippingFee
	order.GiftSent = input.GiftSent
	order.Courier = strings.TrimSpace(input.Courier)
	order.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
}

// CreateOrder 주문 등록. 주문번호가 없으면 내부 번호를 발급한다.
func CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	scope := partnerScopeFromLocals(c)
	claim, _ := c.Locals("accountClaim").(model.TokenClaim)

	order := model.Order{Status: constants.ORDER_PENDING}
	applyOrderInput(&order, input)

	orderNumber := strings.TrimSpace(input.OrderNumber)
	if orderNumber == "" {
		orderNumber = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}
	order.OrderNumber = &orderNumber

	// 협력사 계정은 자기 주문처로 강제
	if scope != nil {
		order.OrderSource = *scope
	} else if input.OrderSource != "" {
		order.OrderSource = input.OrderSource
	} else {
		order.OrderSource = constants.DEFAULT_ORDER_SOURCE
	}

	if order.Courier != "" && order.TrackingNumber != "" {
		order.Status = constants.ORDER_SHIPPED
	}

	db := database.DB
	if err := db.Create(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !input.SkipNotification {
		notifyOrderRegistered(order, claim)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, order)
}

func notifyOrderRegistered(order model.Order, claim model.TokenClaim) {
	senderName := claim.Username
	if senderName == "" {
		senderName = "SYSTEM"
	}
	notification := model.Notification{
		Type:        "ORDER_REGISTERED",
		Title:       fmt.Sprintf("[주문 등록] %s", order.OrderSource),
		Content:     fmt.Sprintf("%s 주문이 등록되었습니다 (고객명: %s)", order.OrderSource, order.RecipientName),
		SenderType:  "PARTNER",
		SenderName:  senderName,
		TargetType:  "HEADQUARTERS",
		RelatedType: "ORDER",
	}
	if err := database.DB.Create(&notification).Error; err != nil {
		log.Println("failed to create order notification:", err)
	}
}

// EditOrder 주문 수정. 금액이 바뀌면 총액을 다시 계산한다.
func EditOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputCreateOrder").(model.CreateOrderInput)
	scope := partnerScopeFromLocals(c)

	db := database.DB
	var order model.Order
	query := scopeOrders(db.Model(&model.Order{}), scope)
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	applyOrderInput(&order, input)

	if orderNumber := strings.TrimSpace(input.OrderNumber); orderNumber != "" {
		order.OrderNumber = &orderNumber
	}
	if scope == nil && input.OrderSource != "" {
		order.OrderSource = input.OrderSource
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateDelivery 단건 운송장 등록. 등록과 동시에 배송중으로 올린다.
func UpdateDelivery(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputUpdateDelivery").(model.UpdateDeliveryInput)
	scope := partnerScopeFromLocals(c)

	db := database.DB
	var order model.Order
	query := scopeOrders(db.Model(&model.Order{}), scope)
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	order.Courier = strings.TrimSpace(input.Courier)
	order.TrackingNumber = strings.TrimSpace(input.TrackingNumber)

	switch input.Status {
	case constants.ORDER_DELIVERED:
		order.Status = constants.ORDER_DELIVERED
		now := time.Now()
		order.CompletedAt = &now
	case constants.ORDER_CANCELLED:
		order.Status = constants.ORDER_CANCELLED
	default:
		order.Status = constants.ORDER_SHIPPED
	}

	if err := db.Save(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if !input.SkipNotification && order.OrderSource != "" {
		update := map[string]*model.PartnerUpdate{
			order.OrderSource: {
				OrderSource: order.OrderSource,
				Count:       1,
				Orders:      []string{orderDisplayNumber(order)},
			},
		}
		go helper.DeliveryNotifier{}.NotifyPartnerDeliveryUpdates(update)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func orderDisplayNumber(order model.Order) string {
	if order.OrderNumber != nil && *order.OrderNumber != "" {
		return *order.OrderNumber
	}
	return order.RecipientName
}

// DeleteOrder 단건 삭제
func DeleteOrder(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	scope := partnerScopeFromLocals(c)

	db := database.DB
	var order model.Order
	query := scopeOrders(db.Model(&model.Order{}), scope)
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": order.ID})
}

// DeleteOrders 선택 삭제. 건별 독립 처리라 일부만 실패할 수 있다.
func DeleteOrders(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	scope := partnerScopeFromLocals(c)

	db := database.DB
	deleted := 0
	failures := []model.ImportFailure{}

	for i, id := range input.IDs {
		var order model.Order
		query := scopeOrders(db.Model(&model.Order{}), scope)
		if err := query.First(&order, id).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: fmt.Sprintf("%d", id),
				Reason:     constants.ORDER_NOT_FOUND,
			})
			continue
		}
		if err := db.Delete(&order).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: orderDisplayNumber(order),
				Reason:     err.Error(),
			})
			continue
		}
		deleted++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted":  deleted,
		"failed":   len(failures),
		"failures": failures,
	})
}

// DeleteAllOrders 전체 삭제 (관리자 전용, 협력사 스코프 없음)
func DeleteAllOrders(c *fiber.Ctx) error {
	result := database.DB.Where("1 = 1").Delete(&model.Order{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": result.RowsAffected,
	})
}

// GetTrackingQR 운송장 조회용 QR 이미지 (PNG)
func GetTrackingQR(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	scope := partnerScopeFromLocals(c)

	var order model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope)
	if err := query.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if order.TrackingNumber == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "운송장번호가 등록되지 않은 주문입니다", errors.New("no tracking number"))
	}

	content := fmt.Sprintf("https://search.naver.com/search.naver?query=%s+%s", order.Courier, order.TrackingNumber)
	png, err := utils.GenerateQRCode(content, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}
