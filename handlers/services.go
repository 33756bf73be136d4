package handlers

import (
	"errors"
	"net/http"

	"sevasetu/services/catalog"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: orNop(logger)}
}

// GetAvailableServices handles GET /api/services?category=.
func (h *CatalogHandler) GetAvailableServices(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.Logger.Error("GetAvailableServices: failed to fetch services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceByID handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	svc, err := h.CatalogSvc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}

// UploadServiceImage handles POST /api/admin/services/:id/image (multipart field "image").
func (h *CatalogHandler) UploadServiceImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Image file is required", err.Error())
		return
	}
	file, err := fh.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Unreadable image file", err.Error())
		return
	}
	defer file.Close()

	svc, err := h.CatalogSvc.UploadServiceImage(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Service not found", c.Param("id"))
			return
		}
		if errors.Is(err, catalog.ErrStorageUnavailable) {
			utils.JSONError(c, http.StatusServiceUnavailable, "Image uploads are disabled", "")
			return
		}
		h.Logger.Error("UploadServiceImage: upload failed", zap.String("serviceId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Image upload failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, svc)
}
