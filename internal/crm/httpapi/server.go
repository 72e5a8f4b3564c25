// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package httpapi exposes crm operations over HTTP.
//
// Failures map to status codes as follows: a validation failure is 400
// with {"errors": [...]} listing every field message; a missing contact is
// 404; anything else is 400 with {"error": "..."}.
package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"code.hybscloud.com/fnx"
	"code.hybscloud.com/fnx/internal/crm"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handlers serves the contact API from one Env.
type Handlers struct {
	env crm.Env
}

// NewRouter returns a gin engine with every route registered.
func NewRouter(env crm.Env) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(env.Logger))
	RegisterRoutes(router.Group(""), &Handlers{env: env})
	return router
}

// RegisterRoutes mounts the API on rg.
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/healthz", h.HandleHealth)

	contacts := rg.Group("/contacts")
	contacts.POST("", h.HandleCreate)
	contacts.GET("", h.HandleList)
	contacts.GET("/:id", h.HandleGet)
	contacts.PATCH("/:id", h.HandlePatch)
	contacts.DELETE("/:id", h.HandleDelete)
	contacts.POST("/:id/undo", h.HandleUndo)

	rg.POST("/orders/validate", h.HandleValidateOrder)
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)))
	}
}

// ErrorResponse is the body of a non-validation failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is the body of a validation failure.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

func writeError(c *gin.Context, err error) {
	var ve *fnx.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, ValidationResponse{Errors: ve.Messages})
	case errors.Is(err, crm.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
}

// respond writes r as JSON with status on success, or the mapped failure.
func respond[A any](c *gin.Context, status int, r fnx.Result[A]) {
	fnx.MatchResult(r,
		func(a A) fnx.Unit { c.JSON(status, a); return fnx.Unit{} },
		func(err error) fnx.Unit { writeError(c, err); return fnx.Unit{} })
}

// HandleHealth handles GET /healthz.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ContactRequest is the body of POST /contacts.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Street  string `json:"street"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (r ContactRequest) contact() crm.Contact {
	return crm.Contact{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Address: crm.Address{Street: r.Street, Geo: crm.Geo{City: r.City, Country: r.Country}},
	}
}

// HandleCreate handles POST /contacts.
func (h *Handlers) HandleCreate(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	respond(c, http.StatusCreated, crm.CreateContact(req.contact()).Run(c.Request.Context(), h.env))
}

// HandleList handles GET /contacts?city=&q=&offset=&limit=.
func (h *Handlers) HandleList(c *gin.Context) {
	f := crm.Filter{City: c.Query("city"), Query: c.Query("q")}
	var err error
	if f.Offset, err = intQuery(c, "offset"); err != nil {
		writeError(c, err)
		return
	}
	if f.Limit, err = intQuery(c, "limit"); err != nil {
		writeError(c, err)
		return
	}
	r := crm.ListContacts(f).Run(c.Request.Context(), h.env)
	respond(c, http.StatusOK, fnx.MapResult(r, func(cs []crm.Contact) []crm.Contact {
		if cs == nil {
			return []crm.Contact{}
		}
		return cs
	}))
}

func intQuery(c *gin.Context, key string) (int, error) {
	s := c.Query(key)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New(key + " must be a non-negative integer")
	}
	return n, nil
}

// HandleGet handles GET /contacts/:id.
func (h *Handlers) HandleGet(c *gin.Context) {
	respond(c, http.StatusOK, crm.GetContact(c.Param("id")).Run(c.Request.Context(), h.env))
}

// PatchRequest is the body of PATCH /contacts/:id. Omitted or null fields
// are left unchanged.
type PatchRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Street  *string `json:"street"`
	City    *string `json:"city"`
	Country *string `json:"country"`
}

func (r PatchRequest) patch() crm.Patch {
	return crm.Patch{
		Name:    fnx.FromPtr(r.Name),
		Email:   fnx.FromPtr(r.Email),
		Phone:   fnx.FromPtr(r.Phone),
		Company: fnx.FromPtr(r.Company),
		Street:  fnx.FromPtr(r.Street),
		City:    fnx.FromPtr(r.City),
		Country: fnx.FromPtr(r.Country),
	}
}

// PatchResponse is the body of a successful PATCH.
type PatchResponse struct {
	Contact crm.Contact `json:"contact"`
	Changes []string    `json:"changes"`
}

// HandlePatch handles PATCH /contacts/:id.
func (h *Handlers) HandlePatch(c *gin.Context) {
	var req PatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	r := crm.PatchContact(c.Param("id"), req.patch()).Run(c.Request.Context(), h.env)
	respond(c, http.StatusOK, fnx.MapResult(r, func(o crm.PatchOutcome) PatchResponse {
		changes := o.Changes
		if changes == nil {
			changes = []string{}
		}
		return PatchResponse{Contact: o.Contact, Changes: changes}
	}))
}

// HandleDelete handles DELETE /contacts/:id.
func (h *Handlers) HandleDelete(c *gin.Context) {
	if err := crm.DeleteContact(c.Param("id")).Run(c.Request.Context(), h.env).Err(); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleUndo handles POST /contacts/:id/undo.
func (h *Handlers) HandleUndo(c *gin.Context) {
	respond(c, http.StatusOK, crm.UndoContact(c.Param("id")).Run(c.Request.Context(), h.env))
}

// OrderRequest is the body of POST /orders/validate.
type OrderRequest struct {
	CustomerID string  `json:"customer_id"`
	Total      float64 `json:"total"`
	Currency   string  `json:"currency"`
}

// HandleValidateOrder handles POST /orders/validate.
func (h *Handlers) HandleValidateOrder(c *gin.Context) {
	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, err)
		return
	}
	draft := crm.OrderDraft{CustomerID: req.CustomerID, Total: req.Total, Currency: req.Currency}
	respond(c, http.StatusOK, crm.OrderValidator().Apply(draft).ToResult())
}
