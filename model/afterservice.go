package model

type AfterService struct {
	DTO
	TicketNumber       string `gorm:"unique;size:30" json:"ticketNumber"` // AS-YYYYMMDD-001
	ReceivedAt         string `json:"receivedAt"`                         // 정규화 실패 시 원문 유지
	CompanyName        string `json:"companyName"`
	CustomerName       string `json:"customerName"`
	CustomerPhone      string `json:"customerPhone"`
	CustomerAddress    string `json:"customerAddress"`
	PickupRequestDate  string `json:"pickupRequestDate"`
	ShipDate           string `json:"shipDate"`
	PickupCompleteDate string `json:"pickupCompleteDate"`
	PurchaseDate       string `json:"purchaseDate"`
	ProductName        string `json:"productName"`
	Description        string `json:"description"`
	RepairContent      string `json:"repairContent"`
	TrackingNumber     string `json:"trackingNumber"`
	PhotoUrl           string `json:"photoUrl"`
	Status             string `json:"status"` // RECEIVED, IN_PROGRESS, AS, EXCHANGE, COMPLETED
}

type CreateAfterServiceInput struct {
	ReceivedAt         string `json:"receivedAt"`
	CompanyName        string `json:"companyName"`
	CustomerName       string `json:"customerName" validate:"required"`
	CustomerPhone      string `json:"customerPhone"`
	CustomerAddress    string `json:"customerAddress"`
	PickupRequestDate  string `json:"pickupRequestDate"`
	ShipDate           string `json:"shipDate"`
	PickupCompleteDate string `json:"pickupCompleteDate"`
	PurchaseDate       string `json:"purchaseDate"`
	ProductName        string `json:"productName"`
	Description        string `json:"description"`
	RepairContent      string `json:"repairContent"`
	TrackingNumber     string `json:"trackingNumber"`
	PhotoUrl           string `json:"photoUrl"`
	Status             string `json:"status"`
}
