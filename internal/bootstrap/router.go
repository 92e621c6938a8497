package bootstrap

import (
	"github.com/gin-gonic/gin"

	httpapi "github.com/welhome/properties-api/internal/api/http"
	"github.com/welhome/properties-api/internal/api/http/middleware"
	prophttp "github.com/welhome/properties-api/internal/properties/http"
	"github.com/welhome/properties-api/internal/properties/repository"
	"github.com/welhome/properties-api/internal/properties/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowOrigins   []string
	RateLimitRPS   float64
	RateLimitBurst int
	Store          repository.Store
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware(dep.AllowOrigins))
	r.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateLimitBurst))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store)
	healthHandler.RegisterRoutes(r)

	propertyService := service.NewPropertyService(dep.Store)
	prophttp.New(propertyService).Register(r.Group("/properties"))

	return r
}
