package main

import (
	"log"

	"github.com/mendokusaisai/kodomo-wallet/config"
	"github.com/mendokusaisai/kodomo-wallet/database"
	accountRoutes "github.com/mendokusaisai/kodomo-wallet/routers/accountRoutes"
	authRoutes "github.com/mendokusaisai/kodomo-wallet/routers/authRoutes"
	familyRoutes "github.com/mendokusaisai/kodomo-wallet/routers/familyRoutes"
	inviteRoutes "github.com/mendokusaisai/kodomo-wallet/routers/inviteRoutes"
	profileRoutes "github.com/mendokusaisai/kodomo-wallet/routers/profileRoutes"
	recurringRoutes "github.com/mendokusaisai/kodomo-wallet/routers/recurringRoutes"
	withdrawalRoutes "github.com/mendokusaisai/kodomo-wallet/routers/withdrawalRoutes"
	"github.com/mendokusaisai/kodomo-wallet/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	profileRoutes.SetupProfileRoutes(app)
	accountRoutes.SetupAccountRoutes(app)
	withdrawalRoutes.SetupWithdrawalRoutes(app)
	recurringRoutes.SetupRecurringRoutes(app)
	familyRoutes.SetupFamilyRoutes(app)
	inviteRoutes.SetupInviteRoutes(app)

	utils.InitializeRecurringDepositScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
