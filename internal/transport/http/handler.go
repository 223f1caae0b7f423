package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/light-bringer/catalog-admin/internal/app/catalog/domain"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/selectors"
	"github.com/light-bringer/catalog-admin/internal/app/catalog/state"
	"github.com/light-bringer/catalog-admin/internal/pkg/logger"
)

// Handler exposes the catalog over HTTP. It drives the state container the
// same way the browser UI does: filter updates and CRUD requests become
// dispatched actions, responses come from the derived view.
type Handler struct {
	store     *state.Store
	view      *selectors.View
	validator *requestValidator
	log       *zap.Logger
}

// NewHandler creates the HTTP handler.
func NewHandler(store *state.Store, view *selectors.View, log *zap.Logger) *Handler {
	return &Handler{
		store:     store,
		view:      view,
		validator: newRequestValidator(),
		log:       log,
	}
}

// Router builds the gin engine with all routes registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(logger.RequestLogger(h.log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", h.listProducts)
		products.GET("/:id", h.getProduct)
		products.POST("", h.createProduct)
		products.PUT("/:id", h.updateProduct)
		products.DELETE("/:id", h.deleteProduct)

		v1.GET("/categories", h.listCategories)
	}

	return r
}

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, apiResponse{
		Data:    data,
		Message: message,
		Success: status < http.StatusBadRequest,
	})
}

// listView is the payload of the list endpoint: the filtered items plus every
// derived projection the admin panel renders.
type listView struct {
	Items       []domain.Product `json:"items"`
	Stats       selectors.Stats  `json:"stats"`
	Categories  []string         `json:"categories"`
	PriceBounds state.PriceRange `json:"priceBounds"`
}

func (h *Handler) listProducts(c *gin.Context) {
	if err := h.applyFilterParams(c); err != nil {
		respond(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	if _, err := h.store.FetchProducts(c.Request.Context()); err != nil {
		status := statusForError(err)
		respond(c, status, nil, err.Error())
		return
	}

	snap := h.view.Snapshot(h.store.State())
	respond(c, http.StatusOK, listView{
		Items:       snap.Filtered,
		Stats:       snap.Stats,
		Categories:  snap.Categories,
		PriceBounds: snap.PriceBounds,
	}, "products retrieved")
}

func (h *Handler) getProduct(c *gin.Context) {
	id := c.Param("id")

	product, found, err := h.lookup(c, id)
	if err != nil {
		respond(c, statusForError(err), nil, err.Error())
		return
	}
	if !found {
		respond(c, http.StatusNotFound, nil, domain.ErrProductNotFound.Error())
		return
	}

	h.store.Dispatch(state.SetSelected{Product: &product})
	respond(c, http.StatusOK, product, "product retrieved")
}

func (h *Handler) createProduct(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	product, err := h.store.CreateProduct(c.Request.Context(), input)
	if err != nil {
		h.store.Dispatch(state.ShowNotification{Message: err.Error(), Severity: state.SeverityError})
		respond(c, statusForError(err), nil, err.Error())
		return
	}

	h.store.Dispatch(state.ShowNotification{Message: "producto creado", Severity: state.SeveritySuccess})
	respond(c, http.StatusCreated, product, "product created")
}

func (h *Handler) updateProduct(c *gin.Context) {
	input, ok := h.bindInput(c)
	if !ok {
		return
	}

	product, err := h.store.UpdateProduct(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		h.store.Dispatch(state.ShowNotification{Message: err.Error(), Severity: state.SeverityError})
		respond(c, statusForError(err), nil, err.Error())
		return
	}

	h.store.Dispatch(state.ShowNotification{Message: "producto actualizado", Severity: state.SeveritySuccess})
	respond(c, http.StatusOK, product, "product updated")
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		h.store.Dispatch(state.ShowNotification{Message: err.Error(), Severity: state.SeverityError})
		respond(c, statusForError(err), nil, err.Error())
		return
	}

	h.store.Dispatch(state.ShowNotification{Message: "producto eliminado", Severity: state.SeveritySuccess})
	respond(c, http.StatusOK, gin.H{"id": id}, "product deleted")
}

func (h *Handler) listCategories(c *gin.Context) {
	respond(c, http.StatusOK, domain.Categories, "categories retrieved")
}

// applyFilterParams translates filter query parameters into filter actions.
// Absent parameters leave the corresponding criteria untouched.
func (h *Handler) applyFilterParams(c *gin.Context) error {
	h.store.Dispatch(state.ResetFilters{})

	if term, ok := c.GetQuery("search"); ok {
		h.store.Dispatch(state.SetSearchTerm{Term: term})
	}
	if category, ok := c.GetQuery("category"); ok {
		h.store.Dispatch(state.SetCategory{Category: category})
	}

	minStr, hasMin := c.GetQuery("min_price")
	maxStr, hasMax := c.GetQuery("max_price")
	if hasMin || hasMax {
		current := h.store.State().Filters.PriceRange
		min, max := current.Min, current.Max
		var err error
		if hasMin {
			if min, err = strconv.ParseFloat(minStr, 64); err != nil {
				return errInvalidParam("min_price", minStr)
			}
		}
		if hasMax {
			if max, err = strconv.ParseFloat(maxStr, 64); err != nil {
				return errInvalidParam("max_price", maxStr)
			}
		}
		// An inverted range is accepted and yields an empty result set.
		h.store.Dispatch(state.SetPriceRange{Min: min, Max: max})
	}

	if inStockStr, ok := c.GetQuery("in_stock"); ok {
		inStock, err := strconv.ParseBool(inStockStr)
		if err != nil {
			return errInvalidParam("in_stock", inStockStr)
		}
		h.store.Dispatch(state.SetInStock{InStock: &inStock})
	}

	return nil
}

func (h *Handler) bindInput(c *gin.Context) (domain.ProductInput, bool) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, "invalid json")
		return domain.ProductInput{}, false
	}

	if err := h.validator.validate(&req); err != nil {
		respond(c, http.StatusBadRequest, nil, err.Error())
		return domain.ProductInput{}, false
	}

	return req.toInput(), true
}

func (h *Handler) lookup(c *gin.Context, id string) (domain.Product, bool, error) {
	items, err := h.store.FetchProducts(c.Request.Context())
	if err != nil {
		return domain.Product{}, false, err
	}
	for _, p := range items {
		if p.ID == id {
			return p, true, nil
		}
	}
	return domain.Product{}, false, nil
}
