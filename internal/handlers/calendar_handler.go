package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/dto"
	"github.com/BruksfildServices01/salon-calendar/internal/httperr"
	"github.com/BruksfildServices01/salon-calendar/internal/httpresp"
	"github.com/BruksfildServices01/salon-calendar/internal/middleware"
	ucCalendar "github.com/BruksfildServices01/salon-calendar/internal/usecase/calendar"
)

// ======================================================
// HANDLER
// ======================================================

type calendarLayoutUseCase interface {
	Execute(ctx context.Context, in ucCalendar.LayoutInput) (*dto.CalendarLayoutDTO, error)
}

type workingBoundsUseCase interface {
	Execute(ctx context.Context, salonID uint) (*dto.WorkingBoundsDTO, error)
}

type CalendarHandler struct {
	layout calendarLayoutUseCase
	bounds workingBoundsUseCase
	log    *zap.Logger
}

func NewCalendarHandler(
	layout calendarLayoutUseCase,
	bounds workingBoundsUseCase,
	log *zap.Logger,
) *CalendarHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CalendarHandler{
		layout: layout,
		bounds: bounds,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CalendarQuery struct {
	View          string `form:"view" binding:"omitempty,calendar_view"`
	Date          string `form:"date" binding:"omitempty,calendar_date"`
	Nav           string `form:"nav" binding:"omitempty,calendar_intent"`
	RTL           *bool  `form:"rtl"`
	EmployeeID    *uint  `form:"employee_id" binding:"omitempty,min=1"`
	HideCancelled bool   `form:"hide_cancelled"`
}

func (q CalendarQuery) toInput(salonID uint) ucCalendar.LayoutInput {
	view, _ := calendar.ParseViewMode(q.View)
	intent, _ := calendar.ParseIntent(q.Nav)
	return ucCalendar.LayoutInput{
		SalonID:       salonID,
		View:          view,
		Date:          q.Date,
		Intent:        intent,
		RTL:           q.RTL,
		EmployeeID:    q.EmployeeID,
		HideCancelled: q.HideCancelled,
	}
}

// ======================================================
// GET /api/me/calendar
// ======================================================

func (h *CalendarHandler) Layout(c *gin.Context) {
	salonID, ok := salonFromContext(c)
	if !ok {
		return
	}

	var q CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.BadRequest(c, "invalid_query", "Parâmetros inválidos.")
		return
	}

	out, err := h.layout.Execute(c.Request.Context(), q.toInput(salonID))
	if err != nil {
		h.writeError(c, err, "failed_to_build_calendar")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// GET /api/me/calendar/bounds
// ======================================================

func (h *CalendarHandler) Bounds(c *gin.Context) {
	salonID, ok := salonFromContext(c)
	if !ok {
		return
	}

	out, err := h.bounds.Execute(c.Request.Context(), salonID)
	if err != nil {
		h.writeError(c, err, "failed_to_get_bounds")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// HELPERS
// ======================================================

func salonFromContext(c *gin.Context) (uint, bool) {
	val, exists := c.Get(middleware.ContextSalonID)
	salonID, ok := val.(uint)
	if !exists || !ok || salonID == 0 {
		httperr.Unauthorized(c, "salon_not_in_context", "Sessão inválida.")
		return 0, false
	}
	return salonID, true
}

func (h *CalendarHandler) writeError(c *gin.Context, err error, fallbackCode string) {
	if be, ok := httperr.AsBusiness(err); ok {
		httperr.Business(c, be)
		return
	}

	h.log.Error("calendar request failed",
		zap.String("code", fallbackCode),
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	httperr.Internal(c, fallbackCode, "Erro ao carregar agenda.")
}
