package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/avdeyev/studydesk/internal/domain/errors"
	"github.com/avdeyev/studydesk/internal/domain/model"
	"github.com/avdeyev/studydesk/internal/server/http/dto"
	"github.com/avdeyev/studydesk/internal/wizard"
)

// OrderHandler manages order endpoints. Order creation replays the submitted
// form through the shared wizard so both adapters enforce identical rules.
type OrderHandler struct {
	facade Facade
	wizard *wizard.Wizard
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade Facade, wiz *wizard.Wizard) *OrderHandler {
	return &OrderHandler{facade: facade, wizard: wiz}
}

// Create handles POST /api/user/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	sessionID := "web-" + uuid.NewString()
	h.wizard.Start(sessionID)
	defer h.wizard.Cancel(sessionID)

	inputs := make([]string, 0, len(req.Subjects)+7)
	inputs = append(inputs, req.Course, req.Semester, req.Faculty)
	inputs = append(inputs, req.Subjects...)
	inputs = append(inputs, wizard.DoneSentinel, req.Deadline, req.TaskSource, req.WorkType)

	var draft *wizard.Draft
	for _, input := range inputs {
		out, err := h.wizard.Submit(sessionID, input)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		switch out.Kind {
		case wizard.OutcomeRetry:
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: out.Err.Message})
			return
		case wizard.OutcomeAborted:
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: out.Prompt.Text})
			return
		case wizard.OutcomeCompleted:
			draft = out.Draft
		}
	}
	if draft == nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "Заполнены не все поля заказа."})
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), userID, draft)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/user/orders.
func (h *OrderHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	orders, err := h.facade.Orders(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListAll handles GET /api/orders (administrators only).
func (h *OrderHandler) ListAll(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus handles PATCH /api/orders/:id/status (administrators only).
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	err = h.facade.UpdateOrderStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.Status(http.StatusOK)
}

func (h *OrderHandler) requireAdmin(c *gin.Context) bool {
	usr, err := h.facade.UserByID(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return false
	}
	if !usr.IsAdmin {
		c.Status(http.StatusForbidden)
		return false
	}
	return true
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	return dto.OrderResponse{
		ID:         order.ID,
		Course:     order.Course,
		Semester:   order.Semester,
		Faculty:    order.Faculty,
		Subjects:   order.Subjects,
		Deadline:   order.Deadline.Format(wizard.DeadlineLayout),
		TaskSource: order.TaskSource,
		WorkType:   order.WorkType,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
	}
}
