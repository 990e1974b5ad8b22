package helper

import (
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/model"
	"log"

	"github.com/robfig/cron/v3"
)

var deliveryScheduler *cron.Cron

func StartDeliveryScheduler() {
	deliveryScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// 5분마다 실행 (엑셀 외 경로로 운송장이 채워진 주문 보정)
	_, err := deliveryScheduler.AddFunc("*/5 * * * *", promoteShippableOrders)
	if err != nil {
		log.Printf("배송 스케줄러 초기화 실패: %v", err)
		return
	}

	deliveryScheduler.Start()
	log.Println("배송 상태 스케줄러 시작 (5분 주기)")
}

// promoteShippableOrders 택배사와 운송장번호가 모두 있는 대기 주문을 배송중으로 올린다.
func promoteShippableOrders() {
	result := database.DB.Model(&model.Order{}).
		Where("status = ? AND courier <> '' AND tracking_number <> ''", constants.ORDER_PENDING).
		Update("status", constants.ORDER_SHIPPED)

	if result.Error != nil {
		log.Printf("배송 상태 보정 실패: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("대기 주문 %d건을 배송중으로 변경", result.RowsAffected)
	}
}

func StopDeliveryScheduler() {
	if deliveryScheduler != nil {
		deliveryScheduler.Stop()
		log.Println("배송 상태 스케줄러 종료")
	}
}
