package handler

import (
	"errors"
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

var kstLocation = time.FixedZone("KST", 9*3600)

// generateTicketNumber AS-YYYYMMDD-NNN. 당일 건수 기준으로 발급하되 중복이면 건너뛴다.
func generateTicketNumber(db *gorm.DB) string {
	dateStr := time.Now().In(kstLocation).Format("20060102")
	prefix := fmt.Sprintf("AS-%s-", dateStr)

	var count int64
	db.Model(&model.AfterService{}).Where("ticket_number LIKE ?", prefix+"%").Count(&count)

	for attempt := 0; attempt < 100; attempt++ {
		count++
		candidate := fmt.Sprintf("%s%03d", prefix, count)
		var existing int64
		db.Model(&model.AfterService{}).Where("ticket_number = ?", candidate).Count(&existing)
		if existing == 0 {
			return candidate
		}
	}

	// 100회 충돌이면 타임스탬프로 대체
	return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli()%1000000)
}

func GetAllAfterService(c *fiber.Ctx) error {
	db := database.DB

	limit := c.QueryInt("limit", 0)
	page := c.QueryInt("page", 0)
	status := c.Query("status")
	search := c.Query("search")

	query := db.Model(&model.AfterService{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name LIKE ? OR customer_phone LIKE ? OR ticket_number LIKE ? OR product_name LIKE ?",
			like, like, like, like)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var items []model.AfterService
	paged := utils.ApplyPagination(query, intPtrOrNil(limit), intPtrOrNil(page))
	if err := paged.Order("created_at desc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       items,
		Limit:      intPtrOrNil(limit),
		Page:       intPtrOrNil(page),
		TotalCount: totalCount,
	})
}

func GetAfterServiceById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var item model.AfterService
	if err := database.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AS_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func buildAfterService(db *gorm.DB, input model.CreateAfterServiceInput) model.AfterService {
	status := input.Status
	if status == "" {
		status = constants.AS_RECEIVED
	}

	receivedAt := utils.ParseFlexibleDate(input.ReceivedAt)
	if receivedAt == "" {
		receivedAt = time.Now().In(kstLocation).Format("2006-01-02")
	}

	return model.AfterService{
		TicketNumber:       generateTicketNumber(db),
		ReceivedAt:         receivedAt,
		CompanyName:        strings.TrimSpace(input.CompanyName),
		CustomerName:       strings.TrimSpace(input.CustomerName),
		CustomerPhone:      strings.TrimSpace(input.CustomerPhone),
		CustomerAddress:    strings.TrimSpace(input.CustomerAddress),
		PickupRequestDate:  utils.ParseFlexibleDate(input.PickupRequestDate),
		ShipDate:           utils.ParseFlexibleDate(input.ShipDate),
		PickupCompleteDate: utils.ParseFlexibleDate(input.PickupCompleteDate),
		PurchaseDate:       utils.ParseFlexibleDate(input.PurchaseDate),
		ProductName:        input.ProductName,
		Description:        input.Description,
		RepairContent:      input.RepairContent,
		TrackingNumber:     strings.TrimSpace(input.TrackingNumber),
		PhotoUrl:           input.PhotoUrl,
		Status:             status,
	}
}

func CreateAfterService(c *fiber.Ctx) error {
	input := c.Locals("inputCreateAfterService").(model.CreateAfterServiceInput)

	db := database.DB
	item := buildAfterService(db, input)
	if err := db.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditAfterService(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)
	input := c.Locals("inputCreateAfterService").(model.CreateAfterServiceInput)

	db := database.DB
	var item model.AfterService
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AS_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	item.CompanyName = strings.TrimSpace(input.CompanyName)
	item.CustomerName = strings.TrimSpace(input.CustomerName)
	item.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	item.CustomerAddress = strings.TrimSpace(input.CustomerAddress)
	item.PickupRequestDate = utils.ParseFlexibleDate(input.PickupRequestDate)
	item.ShipDate = utils.ParseFlexibleDate(input.ShipDate)
	item.PickupCompleteDate = utils.ParseFlexibleDate(input.PickupCompleteDate)
	item.PurchaseDate = utils.ParseFlexibleDate(input.PurchaseDate)
	item.ProductName = input.ProductName
	item.Description = input.Description
	item.RepairContent = input.RepairContent
	item.TrackingNumber = strings.TrimSpace(input.TrackingNumber)
	if input.PhotoUrl != "" {
		item.PhotoUrl = input.PhotoUrl
	}
	if input.ReceivedAt != "" {
		item.ReceivedAt = utils.ParseFlexibleDate(input.ReceivedAt)
	}
	if input.Status != "" {
		item.Status = input.Status
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// BulkCreateAfterService 다건 등록. 건별 격리 처리라 일부만 실패할 수 있다.
func BulkCreateAfterService(c *fiber.Ctx) error {
	inputs := c.Locals("inputBulkAfterService").([]model.CreateAfterServiceInput)

	db := database.DB
	created := 0
	failures := []model.ImportFailure{}

	for i, input := range inputs {
		rowNumber := i + 2 // 엑셀 행 번호 (헤더 제외)

		if strings.TrimSpace(input.CustomerName) == "" {
			failures = append(failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: utils.FirstNonEmpty(input.ProductName, fmt.Sprintf("행 %d", rowNumber)),
				Reason:     "고객명은 필수입니다",
			})
			continue
		}

		item := buildAfterService(db, input)
		if err := db.Create(&item).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: input.CustomerName,
				Reason:     err.Error(),
			})
			continue
		}
		created++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"successCount": created,
		"failCount":    len(failures),
		"total":        len(inputs),
		"failures":     failures,
	})
}

// UploadAfterServiceExcel AS 엑셀 업로드.
// 컬럼: 날짜, 업체명, 고객명, 회수요청, 발송, 회수완료, 구매일자, 상품, 내용, 수리내역, 운송장번호, 연락처, 주소지, 상태
func UploadAfterServiceExcel(c *fiber.Ctx) error {
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
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "업로드할 데이터가 없습니다", errors.New("empty sheet"))
	}

	db := database.DB
	created := 0
	failures := []model.ImportFailure{}

	for i, raw := range rawRows {
		rowNumber := i + 2

		customerName := strings.TrimSpace(raw["고객명"])
		customerPhone := strings.TrimSpace(raw["연락처"])
		if customerName == "" && customerPhone == "" {
			failures = append(failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: fmt.Sprintf("행 %d", rowNumber),
				Reason:     "고객명 또는 연락처가 필요합니다",
			})
			continue
		}
		if customerName == "" {
			customerName = "-"
		}

		input := model.CreateAfterServiceInput{
			ReceivedAt:         raw["날짜"],
			CompanyName:        raw["업체명"],
			CustomerName:       customerName,
			CustomerPhone:      customerPhone,
			CustomerAddress:    raw["주소지"],
			PickupRequestDate:  raw["회수요청"],
			ShipDate:           raw["발송"],
			PickupCompleteDate: raw["회수완료"],
			PurchaseDate:       raw["구매일자"],
			ProductName:        utils.FirstNonEmpty(raw["상품"], "상품"),
			Description:        raw["내용"],
			RepairContent:      utils.FirstNonEmpty(raw["수리내역"], raw["수리 내역"]),
			TrackingNumber:     raw["운송장번호"],
			Status:             helper.MapStatus(raw["상태"]),
		}

		item := buildAfterService(db, input)
		if err := db.Create(&item).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        rowNumber,
				Identifier: customerName,
				Reason:     err.Error(),
			})
			continue
		}
		created++
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":      fmt.Sprintf("%d건 업로드 완료, %d건 실패", created, len(failures)),
		"successCount": created,
		"failCount":    len(failures),
		"total":        len(rawRows),
		"failures":     failures,
	})
}

var afterServiceColumns = []utils.ExcelColumn{
	{Header: "접수번호", Width: 18},
	{Header: "날짜", Width: 12},
	{Header: "업체명", Width: 14},
	{Header: "고객명", Width: 12},
	{Header: "연락처", Width: 16},
	{Header: "주소지", Width: 40},
	{Header: "회수요청", Width: 12},
	{Header: "발송", Width: 12},
	{Header: "회수완료", Width: 12},
	{Header: "구매일자", Width: 12},
	{Header: "상품", Width: 25},
	{Header: "내용", Width: 30},
	{Header: "수리내역", Width: 30},
	{Header: "운송장번호", Width: 16},
	{Header: "상태", Width: 10},
}

// ExportAfterServiceExcel AS 목록 엑셀 다운로드 (상태는 한글 라벨로)
func ExportAfterServiceExcel(c *fiber.Ctx) error {
	status := c.Query("status")

	query := database.DB.Model(&model.AfterService{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var items []model.AfterService
	if err := query.Order("created_at asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	rows := make([][]interface{}, 0, len(items))
	for _, item := range items {
		label := constants.AsStatusLabels[item.Status]
		if label == "" {
			label = item.Status
		}
		rows = append(rows, []interface{}{
			item.TicketNumber,
			item.ReceivedAt,
			item.CompanyName,
			item.CustomerName,
			item.CustomerPhone,
			item.CustomerAddress,
			item.PickupRequestDate,
			item.ShipDate,
			item.PickupCompleteDate,
			item.PurchaseDate,
			item.ProductName,
			item.Description,
			item.RepairContent,
			item.TrackingNumber,
			label,
		})
	}

	f, err := utils.BuildWorkbook("AS목록", afterServiceColumns, rows)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	data, err := utils.WorkbookBytes(f)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	filename := fmt.Sprintf("AS목록_%s.xlsx", time.Now().In(kstLocation).Format("20060102"))
	c.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// DeleteAfterService 단건 삭제
func DeleteAfterService(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var item model.AfterService
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AS_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": item.TicketNumber})
}

// DeleteAfterServices 선택 삭제. 건별 독립 처리.
func DeleteAfterServices(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	db := database.DB
	deleted := 0
	failures := []model.ImportFailure{}

	for i, id := range input.IDs {
		var item model.AfterService
		if err := db.First(&item, id).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: fmt.Sprintf("%d", id),
				Reason:     constants.AS_NOT_FOUND,
			})
			continue
		}
		if err := db.Delete(&item).Error; err != nil {
			failures = append(failures, model.ImportFailure{
				Row:        i + 1,
				Identifier: item.TicketNumber,
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

func DeleteAllAfterService(c *fiber.Ctx) error {
	result := database.DB.Where("1 = 1").Delete(&model.AfterService{})
	if result.Error != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, result.Error)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": result.RowsAffected,
	})
}

// CreateAfterServiceFromOrder 주문 정보를 복사해 AS 접수 생성
func CreateAfterServiceFromOrder(c *fiber.Ctx) error {
	orderId, err := c.ParamsInt("orderId")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var order model.Order
	if err := db.First(&order, orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	item := model.AfterService{
		TicketNumber: generateTicketNumber(db),
		ReceivedAt:   time.Now().In(kstLocation).Format("2006-01-02"),
		CompanyName:  order.OrderSource,
		Status:       constants.AS_RECEIVED,
	}

	// 수신자 정보는 주문에서 그대로 복사
	if err := copier.Copy(&item, &struct {
		CustomerName    string
		CustomerPhone   string
		CustomerAddress string
		ProductName     string
		PurchaseDate    string
	}{
		CustomerName:    order.RecipientName,
		CustomerPhone:   utils.FirstNonEmpty(order.RecipientMobile, order.RecipientPhone),
		CustomerAddress: order.RecipientAddr,
		ProductName:     order.ProductInfo,
		PurchaseDate:    order.OrderDate.String(),
	}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}
