package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(paystackHandler *PaystackHandler, paymentRequestHandler *PaymentRequestHandler) *gin.Engine {
	router := gin.Default()

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/method/paystack")
	{
		api.POST("/webhook", paystackHandler.Webhook)
		api.POST("/verify_transaction", paystackHandler.VerifyTransaction)
		api.GET("/get_payment_request", paymentRequestHandler.GetPaymentRequest)
	}

	return router
}
