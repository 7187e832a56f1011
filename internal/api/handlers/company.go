package handlers

import (
	"net/http"

	"entry-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CompanyHandler handles HTTP requests for company operations
type CompanyHandler struct {
	companyService service.CompanyServiceInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService service.CompanyServiceInterface) *CompanyHandler {
	return &CompanyHandler{
		companyService: companyService,
	}
}

// ListCompanies handles GET /api/v1/companies
// @Summary List my companies
// @Description List the companies owned by the current user in creation order
// @Tags companies
// @Produce json
// @Success 200 {object} service.CompanyListResponse "Companies"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /api/v1/companies [get]
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	companies, err := h.companyService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, companies)
}

// CreateCompany handles POST /api/v1/companies
// @Summary Add a company
// @Description Add a company owned by the current user
// @Tags companies
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param company body service.CreateCompanyRequest true "Company data"
// @Success 201 {object} service.CompanyResponse "Company created"
// @Failure 400 {object} ErrorResponse "Missing or invalid name"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /api/v1/companies [post]
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req service.CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	company, err := h.companyService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, company)
}

// GetCompany handles GET /api/v1/companies/:id
// @Summary Company page
// @Description Get an owned company together with its entry tasks
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} service.CompanyDetailResponse "Company and tasks"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /api/v1/companies/{id} [get]
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	company, err := h.companyService.GetWithTasks(c.Request.Context(), userID, companyID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, company)
}

// DeleteCompany handles DELETE /api/v1/companies/:id
// @Summary Delete a company
// @Description Delete an owned company and all of its entry tasks
// @Tags companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} DeletedResponse "Company deleted"
// @Failure 400 {object} ErrorResponse "Invalid company ID"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Company not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security SessionCookie
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	companyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), userID, companyID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeletedResponse{Deleted: true})
}
