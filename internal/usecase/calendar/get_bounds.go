package calendar

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/salon-calendar/internal/config"
	domain "github.com/BruksfildServices01/salon-calendar/internal/domain/booking"
	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/dto"
	"github.com/BruksfildServices01/salon-calendar/internal/timezone"
)

type GetWorkingBounds struct {
	repo domain.Repository
	cfg  config.CalendarConfig
}

func NewGetWorkingBounds(
	repo domain.Repository,
	cfg config.CalendarConfig,
) *GetWorkingBounds {
	return &GetWorkingBounds{
		repo: repo,
		cfg:  cfg,
	}
}

func (uc *GetWorkingBounds) Execute(
	ctx context.Context,
	salonID uint,
) (*dto.WorkingBoundsDTO, error) {

	salon, err := loadSalon(ctx, uc.repo, salonID)
	if err != nil {
		return nil, err
	}

	hours, err := uc.repo.ListWorkingHours(ctx, salon.ID)
	if err != nil {
		return nil, fmt.Errorf("list working hours of salon %d: %w", salon.ID, err)
	}

	fallback := uc.cfg.Window()
	window := calendar.ResolveBounds(domain.ToWorkingHourRecords(hours), fallback)

	return &dto.WorkingBoundsDTO{
		Window:    toWindowDTO(window),
		IsDefault: window == fallback,
		Timezone:  timezone.Location(salon.Timezone).String(),
	}, nil
}
