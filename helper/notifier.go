package helper

import (
	"context"
	"encoding/json"
	"fmt"
	"fulfillment_admin/config"
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/model"
	"fulfillment_admin/utils"
	"log"
	"strings"

	"github.com/gosimple/slug"
	"github.com/redis/go-redis/v9"
)

var RedisClient = redis.NewClient(&redis.Options{Addr: config.ConfigOr("REDIS_ADDR", "localhost:6379")})

// DeliveryNotifier 배송정보 등록 알림 (쪽지 + 알림 팝업 + 레디스 + 메일).
// 알림 실패는 로그만 남기고 배치 결과에는 영향을 주지 않는다.
type DeliveryNotifier struct{}

func (DeliveryNotifier) NotifyPartnerDeliveryUpdates(updates map[string]*model.PartnerUpdate) {
	db := database.DB

	var admins []model.Account
	if err := db.Where("role IN ?", []string{constants.ROLE_SUPER_ADMIN, constants.ROLE_ADMIN}).Find(&admins).Error; err != nil {
		log.Println("failed to load admin accounts for notification:", err)
	}

	for source, update := range updates {
		subject := fmt.Sprintf("[배송정보 등록] %s %d건", source, update.Count)
		content := fmt.Sprintf("%s 주문 %d건의 배송정보가 등록되었습니다.\n주문번호: %s",
			source, update.Count, strings.Join(update.Orders, ", "))

		// 관리자 쪽지함
		for _, admin := range admins {
			message := model.Message{
				SenderId:      "SYSTEM",
				SenderName:    "배송정보 등록",
				ReceiverId:    admin.ID,
				ReceiverName:  admin.Name,
				ReceiverEmail: admin.Email,
				Subject:       subject,
				Content:       content,
				Priority:      "NORMAL",
			}
			if err := db.Create(&message).Error; err != nil {
				log.Println("failed to create delivery message:", err)
			}
		}

		// 알림 팝업 레코드
		notification := model.Notification{
			Type:          "DELIVERY_UPDATED",
			Title:         subject,
			Content:       content,
			SenderType:    "SYSTEM",
			SenderName:    "배송정보 등록",
			TargetType:    "PARTNER",
			TargetPartner: utils.Ptr(source),
			RelatedType:   "ORDER",
		}
		if err := db.Create(&notification).Error; err != nil {
			log.Println("failed to create delivery notification:", err)
		}

		// 실시간 구독 채널로 전파
		payload, _ := json.Marshal(fiberMapPayload(source, update))
		channel := "delivery:" + slug.Make(source)
		if err := RedisClient.Publish(context.Background(), channel, payload).Err(); err != nil {
			log.Println("failed to publish delivery update:", err)
		}

		// 협력사 계정 메일
		var partner model.Account
		if err := db.Where("assigned_partner = ?", source).First(&partner).Error; err == nil && partner.Email != "" {
			utils.SendPartnerDeliveryEmail(partner.Email, source, update.Count, update.Orders)
		}
	}
}

func fiberMapPayload(source string, update *model.PartnerUpdate) map[string]any {
	return map[string]any{
		"type":        "DELIVERY_UPDATED",
		"orderSource": source,
		"count":       update.Count,
		"orders":      update.Orders,
	}
}
