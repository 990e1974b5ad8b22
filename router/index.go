package router

import (
	"fulfillment_admin/handler"
	"fulfillment_admin/middleware"
	"fulfillment_admin/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	order := v1.Group("/orders", logger.New())
	order.Get("/", middleware.Protected(), middleware.PartnerScope(), handler.GetAllOrders)
	order.Get("/validation", middleware.Protected(), middleware.PartnerScope(), handler.GetOrderValidation)
	order.Get("/pending-delivery", middleware.Protected(), middleware.PartnerScope(), handler.GetPendingDeliveryOrders)
	order.Get("/with-tracking", middleware.Protected(), middleware.PartnerScope(), handler.GetOrdersWithTracking)
	order.Post("/", middleware.Protected(), middleware.PartnerScope(), validate.CreateOrder(), handler.CreateOrder)
	order.Get("/:orderId", middleware.Protected(), middleware.PartnerScope(), validate.GetById("orderId"), handler.GetOrderById)
	order.Get("/:orderId/tracking-qr", middleware.Protected(), middleware.PartnerScope(), validate.GetById("orderId"), handler.GetTrackingQR)
	order.Put("/:orderId", middleware.Protected(), middleware.PartnerScope(), validate.GetById("orderId"), validate.CreateOrder(), handler.EditOrder)
	order.Put("/:orderId/delivery", middleware.Protected(), middleware.PartnerScope(), validate.GetById("orderId"), validate.UpdateDelivery(), handler.UpdateDelivery)
	order.Delete("/", middleware.Protected(), middleware.PartnerScope(), validate.Delete(), handler.DeleteOrders)
	order.Delete("/all", middleware.Protected(), middleware.AdminOnly(), handler.DeleteAllOrders)
	order.Delete("/:orderId", middleware.Protected(), middleware.PartnerScope(), validate.GetById("orderId"), handler.DeleteOrder)

	delivery := v1.Group("/delivery", logger.New())
	delivery.Post("/import", middleware.Protected(), middleware.PartnerScope(), handler.ImportDeliveryExcel)
	delivery.Get("/export", middleware.Protected(), middleware.PartnerScope(), handler.ExportOrdersExcel)
	delivery.Post("/export-selected", middleware.Protected(), middleware.PartnerScope(), validate.Delete(), handler.ExportSelectedOrders)
	delivery.Get("/sample", middleware.Protected(), handler.DownloadSampleExcel)
	delivery.Post("/final-submit", middleware.Protected(), middleware.PartnerScope(), handler.FinalSubmitDelivery)

	as := v1.Group("/after-service", logger.New())
	as.Get("/", middleware.Protected(), handler.GetAllAfterService)
	as.Get("/export", middleware.Protected(), handler.ExportAfterServiceExcel)
	as.Post("/", middleware.Protected(), validate.CreateAfterService(), handler.CreateAfterService)
	as.Post("/bulk", middleware.Protected(), validate.BulkAfterService(), handler.BulkCreateAfterService)
	as.Post("/upload", middleware.Protected(), handler.UploadAfterServiceExcel)
	as.Post("/from-order/:orderId", middleware.Protected(), handler.CreateAfterServiceFromOrder)
	as.Get("/:asId", middleware.Protected(), validate.GetById("asId"), handler.GetAfterServiceById)
	as.Put("/:asId", middleware.Protected(), validate.GetById("asId"), validate.CreateAfterService(), handler.EditAfterService)
	as.Post("/:asId/photo", middleware.Protected(), validate.GetById("asId"), handler.UploadAfterServicePhoto)
	as.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteAfterServices)
	as.Delete("/all", middleware.Protected(), middleware.AdminOnly(), handler.DeleteAllAfterService)
	as.Delete("/:asId", middleware.Protected(), validate.GetById("asId"), handler.DeleteAfterService)

	notification := v1.Group("/notifications", logger.New())
	notification.Get("/", middleware.Protected(), handler.GetNotifications)
	notification.Patch("/:notificationId/read", middleware.Protected(), validate.GetById("notificationId"), handler.MarkNotificationRead)

	message := v1.Group("/messages", logger.New())
	message.Get("/", middleware.Protected(), handler.GetMyMessages)
	message.Patch("/:messageId/read", middleware.Protected(), validate.GetById("messageId"), handler.MarkMessageRead)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)

	// 실시간 채널
	v1.Get("/ws/imports/:uploadId", websocket.New(handler.ImportProgressSocket))
	v1.Get("/ws/delivery/:channel", websocket.New(handler.PartnerDeliverySocket))
}
