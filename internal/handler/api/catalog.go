package api

import (
	"errors"
	"net/http"

	reqdto "smakownia-backend/internal/handler/dto/request"
	"smakownia-backend/internal/handler/httperr"
	resdto "smakownia-backend/internal/handler/dto/response"
	"smakownia-backend/internal/pkg/errs"
	"smakownia-backend/internal/usecase/commands"
	"smakownia-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List masterclasses
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.MasterclassResponse
// @Router /masterclasses [get]
func (h *CatalogHandler) ListMasterclasses(c *gin.Context) {
	list, err := h.catalogQueries.ListMasterclasses(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterclassList(list))
}

// @Summary Get masterclass
// @Tags catalog
// @Produce json
// @Param id path string true "Masterclass ID"
// @Success 200 {object} resdto.MasterclassResponse
// @Failure 404 {object} map[string]string
// @Router /masterclasses/{id} [get]
func (h *CatalogHandler) GetMasterclass(c *gin.Context) {
	m, err := h.catalogQueries.GetMasterclass(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrMasterclassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Masterclass not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterclass(m))
}

// @Summary Create masterclass
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MasterclassRequest true "Masterclass data"
// @Success 201 {object} resdto.MasterclassResponse
// @Failure 400 {object} map[string]string
// @Router /admin/masterclasses [post]
func (h *CatalogHandler) CreateMasterclass(c *gin.Context) {
	var req reqdto.MasterclassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	m, err := req.ToDomain(uuid.NewString())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.catalogCommands.CreateMasterclass(c.Request.Context(), m); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMasterclass(m))
}

// @Summary Update masterclass
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Masterclass ID"
// @Param request body reqdto.MasterclassRequest true "Masterclass data"
// @Success 200 {object} resdto.MasterclassResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/masterclasses/{id} [put]
func (h *CatalogHandler) UpdateMasterclass(c *gin.Context) {
	var req reqdto.MasterclassRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	m, err := req.ToDomain(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.catalogCommands.UpdateMasterclass(c.Request.Context(), m); err != nil {
		if errors.Is(err, errs.ErrMasterclassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Masterclass not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMasterclass(m))
}

// @Summary Delete masterclass
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Masterclass ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/masterclasses/{id} [delete]
func (h *CatalogHandler) DeleteMasterclass(c *gin.Context) {
	if err := h.catalogCommands.DeleteMasterclass(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrMasterclassNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Masterclass not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reduce masterclass slot
// @Description Book one seat by hand, for phone or on-site sales
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Masterclass ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /masterclasses/{id}/reduce-slot [post]
func (h *CatalogHandler) ReduceMasterclassSlot(c *gin.Context) {
	err := h.catalogCommands.ReduceMasterclassSlot(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoAvailableSlots):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No available slots", nil)
		case errors.Is(err, errs.ErrMasterclassNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Masterclass not found", nil)
		default:
			internalError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary List online products
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /online-products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.catalogQueries.ListProducts(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(list))
}

// @Summary Get online product
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /online-products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.catalogQueries.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary Create online product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product data"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Router /admin/online-products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	p, err := req.ToDomain(uuid.NewString())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.catalogCommands.CreateProduct(c.Request.Context(), p); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProduct(p))
}

// @Summary Update online product
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product data"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/online-products/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	p, err := req.ToDomain(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}

	if err := h.catalogCommands.UpdateProduct(c.Request.Context(), p); err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProduct(p))
}

// @Summary Delete online product
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/online-products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalogCommands.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List partners
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.PartnerResponse
// @Router /partners [get]
func (h *CatalogHandler) ListPartners(c *gin.Context) {
	list, err := h.catalogQueries.ListPartners(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartnerList(list))
}

// @Summary Create partner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PartnerRequest true "Partner data"
// @Success 201 {object} resdto.PartnerResponse
// @Failure 400 {object} map[string]string
// @Router /admin/partners [post]
func (h *CatalogHandler) CreatePartner(c *gin.Context) {
	var req reqdto.PartnerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	p := req.ToDomain(uuid.NewString())
	if err := h.catalogCommands.CreatePartner(c.Request.Context(), p); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPartner(p))
}

// @Summary Update partner
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Param request body reqdto.PartnerRequest true "Partner data"
// @Success 200 {object} resdto.PartnerResponse
// @Failure 404 {object} map[string]string
// @Router /admin/partners/{id} [put]
func (h *CatalogHandler) UpdatePartner(c *gin.Context) {
	var req reqdto.PartnerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	p := req.ToDomain(c.Param("id"))
	if err := h.catalogCommands.UpdatePartner(c.Request.Context(), p); err != nil {
		if errors.Is(err, errs.ErrPartnerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPartner(p))
}

// @Summary Delete partner
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Partner ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/partners/{id} [delete]
func (h *CatalogHandler) DeletePartner(c *gin.Context) {
	if err := h.catalogCommands.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrPartnerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Partner not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List map locations
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.MapLocationResponse
// @Router /map-locations [get]
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	list, err := h.catalogQueries.ListLocations(c.Request.Context())
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationList(list))
}

// @Summary Create map location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.MapLocationRequest true "Location data"
// @Success 201 {object} resdto.MapLocationResponse
// @Failure 400 {object} map[string]string
// @Router /admin/map-locations [post]
func (h *CatalogHandler) CreateLocation(c *gin.Context) {
	var req reqdto.MapLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	l := req.ToDomain(uuid.NewString())
	if err := h.catalogCommands.CreateLocation(c.Request.Context(), l); err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLocation(l))
}

// @Summary Update map location
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Param request body reqdto.MapLocationRequest true "Location data"
// @Success 200 {object} resdto.MapLocationResponse
// @Failure 404 {object} map[string]string
// @Router /admin/map-locations/{id} [put]
func (h *CatalogHandler) UpdateLocation(c *gin.Context) {
	var req reqdto.MapLocationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	l := req.ToDomain(c.Param("id"))
	if err := h.catalogCommands.UpdateLocation(c.Request.Context(), l); err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocation(l))
}

// @Summary Delete map location
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Location ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/map-locations/{id} [delete]
func (h *CatalogHandler) DeleteLocation(c *gin.Context) {
	if err := h.catalogCommands.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, errs.ErrLocationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Location not found", nil)
			return
		}
		internalError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func internalError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
