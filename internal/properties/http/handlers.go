package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/welhome/properties-api/internal/properties/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	in, ok := bindProperty(c)
	if !ok {
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in, ok := bindProperty(c)
	if !ok {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

func bindProperty(c *gin.Context) (domain.PropertyInput, bool) {
	var req propertyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": bindingMessage(err)})
		return domain.PropertyInput{}, false
	}
	return domain.PropertyInput{
		Title:   req.Title,
		Address: req.Address,
		Status:  domain.Status(req.Status),
	}, true
}

// bindingMessage names the first offending field of a rejected body.
func bindingMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "oneof":
			return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
		default:
			return fmt.Sprintf("%s is invalid", field)
		}
	}
	if errors.Is(err, io.EOF) {
		return "request body is required"
	}
	return "invalid body"
}

func writeError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": vErr.Error()})
	case errors.Is(err, domain.ErrPropertyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "property not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "internal server error"})
	}
}
