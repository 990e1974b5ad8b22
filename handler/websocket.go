package handler

import (
	"context"
	"fulfillment_admin/helper"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	importClients = make(map[string]map[*websocket.Conn]bool)
	importMu      sync.Mutex
)

// ImportProgressSocket 엑셀 가져오기 진행률 구독.
// 업로드 화면이 uploadId로 접속하면 레디스 채널의 진행률을 그대로 흘려보낸다.
func ImportProgressSocket(c *websocket.Conn) {
	uploadId := c.Params("uploadId")

	defer func() {
		importMu.Lock()
		if importClients[uploadId] != nil {
			delete(importClients[uploadId], c)
		}
		importMu.Unlock()
		c.Close()
	}()

	importMu.Lock()
	if importClients[uploadId] == nil {
		importClients[uploadId] = make(map[*websocket.Conn]bool)
	}
	importClients[uploadId][c] = true
	importMu.Unlock()

	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		"import:"+uploadId,
	)
	defer pubsub.Close()

	channel := pubsub.Channel()

	for msg := range channel {
		payload := []byte(msg.Payload)

		importMu.Lock()
		for conn := range importClients[uploadId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(importClients[uploadId], conn)
			}
		}
		importMu.Unlock()
	}
}

// PartnerDeliverySocket 협력사 배송정보 등록 실시간 알림 구독
func PartnerDeliverySocket(c *websocket.Conn) {
	channelKey := c.Params("channel")

	defer c.Close()

	pubsub := helper.RedisClient.Subscribe(
		context.Background(),
		"delivery:"+channelKey,
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}
