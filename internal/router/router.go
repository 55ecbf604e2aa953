package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SubmitEmail(c *ginext.Context)
	GetPayment(c *ginext.Context)
	PostPayment(c *ginext.Context)
	Callback(c *ginext.Context)
	GetRegistration(c *ginext.Context)
	PostRegistration(c *ginext.Context)
	Login(c *ginext.Context)
	Logout(c *ginext.Context)
	Registrations(c *ginext.Context)
	Stats(c *ginext.Context)
	Export(c *ginext.Context)
}

func InitRouter(mode string, h Handler, session, adminAuth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		flow := api.Group("/flow")
		flow.Use(session)
		{
			flow.POST("/email", h.SubmitEmail)
			flow.GET("/payment", h.GetPayment)
			flow.POST("/payment", h.PostPayment)
			flow.GET("/callback", h.Callback)
			flow.GET("/registration", h.GetRegistration)
			flow.POST("/registration", h.PostRegistration)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", h.Login)
			admin.POST("/logout", h.Logout)

			registrations := admin.Group("/registrations")
			registrations.Use(adminAuth)
			{
				registrations.GET("", h.Registrations)
				registrations.GET("/stats", h.Stats)
				registrations.GET("/export", h.Export)
			}
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	return router
}
