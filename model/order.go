package model

import (
	"fulfillment_admin/utils"
	"time"
)

type Order struct {
	DTO
	OrderNumber      *string          `gorm:"uniqueIndex;size:40" json:"orderNumber"` // 없으면 NULL (unique 충돌 방지)
	OrderDate        utils.CustomDate `json:"orderDate"`
	RecipientName    string           `json:"recipientName"`
	RecipientPhone   string           `json:"recipientPhone"`  // 일반전화
	RecipientMobile  string           `json:"recipientMobile"` // 휴대전화
	RecipientZipCode string           `json:"recipientZipCode"`
	RecipientAddr    string           `json:"recipientAddr"`
	ProductInfo      string           `json:"productInfo"` // 상품명 및 수량
	DeliveryMsg      string           `json:"deliveryMsg"`
	OrderSource      string           `json:"orderSource"` // 고객주문처명 (협력사 태그)
	BasePrice        float64          `json:"basePrice"`
	ShippingFee      float64          `json:"shippingFee"`
	TotalAmount      float64          `json:"totalAmount"` // 단가 + 배송비, 저장 시 재계산
	GiftSent         bool             `json:"giftSent"`
	Courier          string           `json:"courier"`
	TrackingNumber   string           `json:"trackingNumber"`
	Status           string           `json:"status"` // PENDING, SHIPPED, DELIVERED, CANCELLED
	CompletedAt      *time.Time       `json:"completedAt,omitempty"`
}

type CreateOrderInput struct {
	OrderDate        string  `json:"orderDate"`
	OrderNumber      string  `json:"orderNumber"`
	RecipientName    string  `json:"recipientName" validate:"required"`
	RecipientPhone   string  `json:"recipientPhone"`
	RecipientMobile  string  `json:"recipientMobile"`
	RecipientZipCode string  `json:"recipientZipCode"`
	RecipientAddr    string  `json:"recipientAddr"`
	ProductInfo      string  `json:"productInfo"`
	DeliveryMsg      string  `json:"deliveryMsg"`
	OrderSource      string  `json:"orderSource"`
	BasePrice        float64 `json:"basePrice"`
	ShippingFee      float64 `json:"shippingFee"`
	GiftSent         bool    `json:"giftSent"`
	Courier          string  `json:"courier"`
	TrackingNumber   string  `json:"trackingNumber"`
	SkipNotification bool    `json:"skipNotification"`
}

type UpdateDeliveryInput struct {
	Courier          string `json:"courier"`
	TrackingNumber   string `json:"trackingNumber"`
	Status           string `json:"status"`
	SkipNotification bool   `json:"skipNotification"`
}
