package helper

import (
	"fulfillment_admin/constants"
	"fulfillment_admin/database"
	"fulfillment_admin/model"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var validationScheduler gocron.Scheduler

// RunDailyValidationSweep 전체 주문 필드 검증 일괄 실행.
// 오류가 있으면 건수만 로그에 남긴다 (화면에서는 검증 API로 상세 조회).
func RunDailyValidationSweep() {
	log.Println("[CRON] 일일 주문 검증 시작")

	db := database.DB
	var orders []model.Order
	if err := db.Where("status <> ?", constants.ORDER_CANCELLED).Find(&orders).Error; err != nil {
		log.Printf("일일 검증 주문 조회 실패: %v", err)
		return
	}

	defects := ValidateOrders(orders)
	if len(defects) == 0 {
		log.Printf("일일 검증 완료: 주문 %d건 이상 없음", len(orders))
		return
	}

	byType := map[string]int{}
	for _, d := range defects {
		byType[d.ErrorType]++
	}
	log.Printf("일일 검증 완료: 주문 %d건 중 오류 %d건 (유형별: %v)", len(orders), len(defects), byType)
}

func StartValidationScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("KST", 9*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	validationScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(RunDailyValidationSweep),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("✅ 일일 주문 검증 스케줄러 시작 (00:05 KST)")
}

func StopValidationScheduler() {
	if validationScheduler != nil {
		_ = validationScheduler.Shutdown()
		log.Println("일일 주문 검증 스케줄러 종료")
	}
}
