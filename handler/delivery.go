package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// dbOrderUpdater 배송정보 반영 시 상태도 함께 배송중으로 올린다
type dbOrderUpdater struct{}

func (dbOrderUpdater) UpdateDeliveryInfo(orderId uint, courier, trackingNumber string) error {
	return database.DB.Model(&model.Order{}).
		Where("id = ?", orderId).
		Updates(map[string]interface{}{
			"courier":         courier,
			"tracking_number": trackingNumber,
			"status":          constants.ORDER_SHIPPED,
		}).Error
}

func publishImportProgress(uploadId string, done, total int) {
	if uploadId == "" {
		return
	}
	payload, _ := json.Marshal(fiber.Map{"done": done, "total": total})
	if err := helper.RedisClient.Publish(context.Background(), "import:"+uploadId, payload).Err(); err != nil {
		log.Println("failed to publish import progress:", err)
	}
}

// ImportDeliveryExcel 배송정보 엑셀 업로드.
// 행 단위 격리 처리: 실패 행은 건너뛰고 나머지는 계속 반영한다.
func ImportDeliveryExcel(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "엑셀 파일을 첨부해주세요", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "엑셀 파일을 열 수 없습니다", err)
	}
	defer file.Close()

	rawRows, err := utils.ParseFirstSheet(file)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
	}
	if len(rawRows) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "처리할 행이 없습니다", errors.New("empty sheet"))
	}

	rows := make([]model.DeliveryImportRow, 0, len(rawRows))
	for _, raw := range rawRows {
		rows = append(rows, helper.ParseDeliveryRow(raw))
	}

	// 매칭 후보는 협력사 스코프 내 전체 주문
	scope := partnerScopeFromLocals(c)
	var candidates []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope)
	if err := query.Order("created_at asc").Find(&candidates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	uploadId := c.FormValue("uploadId")
	report := helper.ReconcileDeliveryRows(rows, candidates, dbOrderUpdater{}, helper.DeliveryNotifier{}, func(done, total int) {
		publishImportProgress(uploadId, done, total)
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"successCount": len(report.Successes),
		"failCount":    len(report.Failures),
		"successes":    report.Successes,
		"failures":     report.Failures,
		"summary":      helper.FormatBatchReport(report),
	})
}

var deliveryColumns = []utils.ExcelColumn{
	{Header: constants.COL_ORDER_DATE, Width: 12},
	{Header: constants.COL_NAME, Width: 12},
	{Header: constants.COL_PHONE, Width: 16},
	{Header: constants.COL_MOBILE, Width: 16},
	{Header: constants.COL_ZIPCODE, Width: 10},
	{Header: constants.COL_ADDR, Width: 40},
	{Header: constants.COL_ORDER_NUMBER, Width: 18},
	{Header: constants.COL_PRODUCT, Width: 30},
	{Header: constants.COL_DELIVERY_MSG, Width: 25},
	{Header: constants.COL_ORDER_SOURCE, Width: 14},
	{Header: constants.COL_BASE_PRICE, Width: 12},
	{Header: constants.COL_SHIPPING_FEE, Width: 10},
	{Header: constants.COL_COURIER, Width: 12},
	{Header: constants.COL_TRACKING, Width: 16},
	{Header: constants.COL_GIFT_SENT, Width: 10},
}

func orderToExcelRow(order model.Order) []interface{} {
	giftSent := ""
	if order.GiftSent {
		giftSent = "발송"
	}
	return []interface{}{
		order.OrderDate.String(),
		order.RecipientName,
		order.RecipientPhone,
		order.RecipientMobile,
		order.RecipientZipCode,
		order.RecipientAddr,
		orderDisplayNumber(order),
		order.ProductInfo,
		order.DeliveryMsg,
		order.OrderSource,
		order.BasePrice,
		order.ShippingFee,
		order.Courier,
		order.TrackingNumber,
		giftSent,
	}
}

func sendWorkbook(c *fiber.Ctx, filename string, columns []utils.ExcelColumn, rows [][]interface{}) error {
	f, err := utils.BuildWorkbook("발주서", columns, rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	data, err := utils.WorkbookBytes(f)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// ExportOrdersExcel 주문 목록 엑셀 다운로드 (상태/주문처 필터 지원)
func ExportOrdersExcel(c *fiber.Ctx) error {
	scope := partnerScopeFromLocals(c)
	status := c.Query("status")
	orderSource := c.Query("orderSource")

	query := scopeOrders(database.DB.Model(&model.Order{}), scope)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if orderSource != "" && scope == nil {
		query = query.Where("order_source = ?", orderSource)
	}

	var orders []model.Order
	if err := query.Order("created_at asc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([][]interface{}, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderToExcelRow(order))
	}

	filename := fmt.Sprintf("발주서_%s.xlsx", time.Now().Format("20060102"))
	return sendWorkbook(c, filename, deliveryColumns, rows)
}

// ExportSelectedOrders 선택한 주문만 엑셀 다운로드
func ExportSelectedOrders(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)
	scope := partnerScopeFromLocals(c)

	var orders []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope)
	if err := query.Where("id IN ?", input.IDs).Order("created_at asc").Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(orders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, errors.New("no orders matched"))
	}

	rows := make([][]interface{}, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, orderToExcelRow(order))
	}

	filename := fmt.Sprintf("발주서_선택_%s.xlsx", time.Now().Format("20060102"))
	return sendWorkbook(c, filename, deliveryColumns, rows)
}

// DownloadSampleExcel 업로드 양식 샘플 (헤더 + 예시 1행)
func DownloadSampleExcel(c *fiber.Ctx) error {
	sample := [][]interface{}{
		{"2026-01-05", "홍길동", "02-1234-5678", "010-1234-5678", "06236", "서울시 강남구 테헤란로 123",
			"ORD-20260105-001", "프리미엄 세트 x 2", "부재 시 경비실에 맡겨주세요", "로켓그로스",
			25000, 3000, "CJ대한통운", "123456789012", "발송"},
	}
	return sendWorkbook(c, "배송정보_양식.xlsx", deliveryColumns, sample)
}

// FinalSubmitDelivery 최종 송부. 운송장이 채워진 대기 주문을 일괄 배송중으로
// 확정하고 관리자에게 요약 메일을 보낸다. 건별 독립 처리.
func FinalSubmitDelivery(c *fiber.Ctx) error {
	scope := partnerScopeFromLocals(c)

	var orders []model.Order
	query := scopeOrders(database.DB.Model(&model.Order{}), scope).
		Where("status = ? AND courier <> '' AND tracking_number <> ''", constants.ORDER_PENDING)
	if err := query.Find(&orders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if len(orders) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "최종 송부할 주문이 없습니다", errors.New("no submittable orders"))
	}

	now := time.Now()
	confirmed := 0
	failures := []model.ImportFailure{}
	for i, order := range orders {
		if err := database.DB.Model(&model.Order{}).
			Where("id = ?", order.ID).
			Update("status", constants.ORDER_SHIPPED).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: orderDisplayNumber(order),
				Reason:     err.Error(),
			})
			continue
		}
		confirmed++
	}

	subject := fmt.Sprintf("[최종 송부] 주문 %d건 확정", confirmed)
	body := fmt.Sprintf("최종 송부 완료: 성공 %d건 / 실패 %d건 (%s)", confirmed, len(failures), now.Format("2006-01-02 15:04"))
	if err := utils.SendAdminAlertEmail(subject, body); err != nil {
		log.Println("failed to send final submit alert:", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"confirmed": confirmed,
		"failed":    len(failures),
		"failures":  failures,
	})
}
