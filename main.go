package main

import (
	"fulfillment_admin/config"
	"fulfillment_admin/database"
	"fulfillment_admin/helper"
	"fulfillment_admin/router"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 100 * 1024 * 1024, // 엑셀/사진 업로드 허용 한도
	})

	helper.StartValidationScheduler()
	defer helper.StopValidationScheduler()
	helper.StartDeliveryScheduler()
	defer helper.StopDeliveryScheduler()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.ConfigOr("CORS_ORIGIN", "http://localhost:3000"),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	router.SetupRoutes(app)
	log.Fatal(app.Listen(":" + config.ConfigOr("PORT", "8003")))
}
