package handler

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SigParams struct {
	Folder   string `json:"folder"`
	PublicID string `json:"publicId"`
}

// GenerateSignature 프론트에서 직접 업로드할 때 쓰는 클라우디너리 서명 발급
func GenerateSignature(c *fiber.Ctx) error {
	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "요청 형식이 올바르지 않습니다", err)
	}

	timestamp := time.Now().Unix()
	timestampStr := fmt.Sprintf("%d", timestamp)

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = timestampStr

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// 서명 문자열은 raw 값으로 직접 조립 (URL 인코딩 없음)
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadAfterServicePhoto AS 접수 사진 업로드 (제품 불량 사진)
func UploadAfterServicePhoto(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	db := database.DB
	var item model.AfterService
	if err := db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.AS_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "사진 파일을 첨부해주세요", err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "사진 파일을 열 수 없습니다", err)
	}
	defer file.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(c.Context(), file, uploader.UploadParams{
		Folder:   "after-service",
		PublicID: fmt.Sprintf("as-%s", item.TicketNumber),
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "사진 업로드에 실패했습니다", err)
	}

	item.PhotoUrl = result.SecureURL
	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"photoUrl": item.PhotoUrl,
	})
}
