package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Concesionaria-api/internal/application/auth"
	"github.com/jhoicas/Concesionaria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	CarUC       *usecase.CarUseCase
	SaleUC      *usecase.SaleUseCase
	PaymentUC   *usecase.PaymentUseCase
	InsuranceUC *usecase.InsuranceUseCase
	ServiceUC   *usecase.ServiceUseCase
	SupplierUC  *usecase.SupplierUseCase
	TestDriveUC *usecase.TestDriveUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (protegido)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Cars (protegido)
	cars := protected.Group("/cars")
	carHandler := NewCarHandler(deps.CarUC)
	cars.Post("/", carHandler.Create)
	cars.Get("/", carHandler.List)
	cars.Get("/:id", carHandler.GetByID)
	cars.Get("/:id/sales", carHandler.SalesHistory)
	cars.Get("/:id/services", carHandler.ServicesHistory)
	cars.Put("/:id", carHandler.Update)
	cars.Delete("/:id", carHandler.Delete)

	// Sales (protegido)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/customer/:id", saleHandler.ListByCustomer)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)
	payments.Get("/sale/:id", paymentHandler.ListBySale)
	payments.Get("/:id", paymentHandler.GetByID)
	payments.Put("/:id", paymentHandler.Update)
	payments.Delete("/:id", paymentHandler.Delete)

	// Insurance (protegido)
	insurance := protected.Group("/insurance")
	insuranceHandler := NewInsuranceHandler(deps.InsuranceUC)
	insurance.Post("/", insuranceHandler.Create)
	insurance.Get("/", insuranceHandler.List)
	insurance.Get("/sale/:id", insuranceHandler.GetBySale)
	insurance.Get("/:id", insuranceHandler.GetByID)
	insurance.Put("/:id", insuranceHandler.Update)
	insurance.Delete("/:id", insuranceHandler.Delete)

	// Services (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/car/:id", serviceHandler.ListByCar)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/car/:id", supplierHandler.ListByCar)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Test drives (protegido)
	testDrives := protected.Group("/test-drives")
	testDriveHandler := NewTestDriveHandler(deps.TestDriveUC)
	testDrives.Post("/", testDriveHandler.Create)
	testDrives.Get("/", testDriveHandler.List)
	testDrives.Get("/customer/:id", testDriveHandler.ListByCustomer)
	testDrives.Get("/car/:id", testDriveHandler.ListByCar)
	testDrives.Get("/:id", testDriveHandler.GetByID)
	testDrives.Put("/:id", testDriveHandler.Update)
	testDrives.Delete("/:id", testDriveHandler.Delete)
}
