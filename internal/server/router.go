package server

import (
	accounts "auction-broker/internal/accountService"
	lifecycle "auction-broker/internal/lifecycleService"
	model "auction-broker/internal/models"
	"auction-broker/internal/repository"
	accounthandler "auction-broker/services/accounts/handler"
	bidhandler "auction-broker/services/bids/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(lifecycleSvc *lifecycle.Service, accountSvc *accounts.Service, users repository.UserStore) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging
	router.Use(IdentityMiddleware(users))

	bidHandler := bidhandler.NewBidHandler(lifecycleSvc)
	accountHandler := accounthandler.NewAccountHandler(accountSvc)

	bids := router.Group("/bids", RequireRole(model.RoleCustomer))
	{
		bids.GET("", bidHandler.ListBidsHandler)
		bids.POST("", bidHandler.CreateBidHandler)
		bids.GET("/:bid_id", bidHandler.GetBidHandler)
		bids.GET("/:bid_id/history", bidHandler.GetBidHistoryHandler)
		bids.POST("/:bid_id/payment-intent", bidHandler.CreatePaymentIntentHandler)
	}

	employee := router.Group("/employee/bids", RequireRole(model.RoleEmployee))
	{
		employee.GET("", bidHandler.ListAllBidsHandler)
		employee.POST("/:bid_id/approve", bidHandler.ApproveBidHandler)
		employee.POST("/:bid_id/reject", bidHandler.RejectBidHandler)
		employee.PATCH("/:bid_id/status", bidHandler.UpdateStatusHandler)
		employee.POST("/:bid_id/refund", bidHandler.RefundBidHandler)
		employee.DELETE("/:bid_id", bidHandler.DeleteBidHandler)
	}

	admin := router.Group("/admin/employees", RequireRole(model.RoleSuperAdmin))
	{
		admin.GET("", accountHandler.ListEmployeesHandler)
		admin.DELETE("/:employee_id", accountHandler.DeactivateEmployeeHandler)
		admin.GET("/:employee_id/actions", accountHandler.ListEmployeeActionsHandler)
	}

	return router
}
