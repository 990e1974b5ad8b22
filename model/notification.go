package model

// Message 관리자 쪽지함 레코드
type Message struct {
	DTO
	SenderId      string `json:"senderId"`
	SenderName    string `json:"senderName"`
	SenderEmail   string `json:"senderEmail"`
	ReceiverId    uint   `json:"receiverId"`
	ReceiverName  string `json:"receiverName"`
	ReceiverEmail string `json:"receiverEmail"`
	Subject       string `json:"subject"`
	Content       string `json:"content"`
	Priority      string `json:"priority"` // LOW, NORMAL, HIGH, URGENT
	IsRead        bool   `json:"isRead"`
}

// Notification 팝업 표시용 알림 레코드
type Notification struct {
	DTO
	Type          string  `json:"type"` // ORDER_REGISTERED, DELIVERY_UPDATED, ...
	Title         string  `json:"title"`
	Content       string  `json:"message"`
	SenderType    string  `json:"senderType"` // PARTNER, SYSTEM
	SenderName    string  `json:"senderName"`
	TargetType    string  `json:"targetType"` // HEADQUARTERS, PARTNER
	TargetPartner *string `json:"targetPartner"`
	RelatedType   string  `json:"relatedType"`
	IsRead        bool    `json:"isRead"`
}
