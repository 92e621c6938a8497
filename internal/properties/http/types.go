package http

import "github.com/welhome/properties-api/internal/properties/service"

// Handler bundles the dependencies for property HTTP endpoints.
type Handler struct {
	svc *service.PropertyService
}

func New(svc *service.PropertyService) *Handler {
	return &Handler{svc: svc}
}

// propertyReq is the body of create and update.
type propertyReq struct {
	Title   string `json:"title" binding:"required"`
	Address string `json:"address" binding:"required"`
	Status  string `json:"status" binding:"required,oneof=active inactive"`
}
