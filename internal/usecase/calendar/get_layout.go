package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-calendar/internal/cache"
	"github.com/BruksfildServices01/salon-calendar/internal/config"
	domain "github.com/BruksfildServices01/salon-calendar/internal/domain/booking"
	"github.com/BruksfildServices01/salon-calendar/internal/domain/calendar"
	"github.com/BruksfildServices01/salon-calendar/internal/dto"
	"github.com/BruksfildServices01/salon-calendar/internal/httperr"
	"github.com/BruksfildServices01/salon-calendar/internal/metrics"
	"github.com/BruksfildServices01/salon-calendar/internal/models"
	"github.com/BruksfildServices01/salon-calendar/internal/timezone"
)

// LayoutInput is one calendar request. Empty View means week, empty Date
// means today in the salon timezone and nil RTL follows the salon locale.
type LayoutInput struct {
	SalonID       uint
	View          calendar.ViewMode
	Date          string
	Intent        calendar.Intent
	RTL           *bool
	EmployeeID    *uint
	HideCancelled bool
}

type GetCalendarLayout struct {
	repo    domain.Repository
	cache   *cache.LayoutCache
	metrics *metrics.Metrics
	log     *zap.Logger
	cfg     config.CalendarConfig

	now func(tz string) time.Time
}

func NewGetCalendarLayout(
	repo domain.Repository,
	layoutCache *cache.LayoutCache,
	m *metrics.Metrics,
	log *zap.Logger,
	cfg config.CalendarConfig,
) *GetCalendarLayout {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetCalendarLayout{
		repo:    repo,
		cache:   layoutCache,
		metrics: m,
		log:     log,
		cfg:     cfg,
		now:     timezone.NowIn,
	}
}

func (uc *GetCalendarLayout) Execute(
	ctx context.Context,
	in LayoutInput,
) (*dto.CalendarLayoutDTO, error) {

	salon, err := loadSalon(ctx, uc.repo, in.SalonID)
	if err != nil {
		return nil, err
	}

	today := timezone.WallClock(uc.now(salon.Timezone))

	cursor := calendar.Cursor{View: in.View, Date: today}
	if cursor.View == "" {
		cursor.View = calendar.ViewWeek
	}
	if in.Date != "" {
		d, err := time.Parse(calendar.DateFormat, in.Date)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
		}
		cursor.Date = d
	}
	cursor = calendar.Navigate(cursor, in.Intent, today)

	rtl := calendar.IsRTLLocale(salon.Locale)
	if in.RTL != nil {
		rtl = *in.RTL
	}

	weekStart := uc.cfg.FirstWeekday()
	from, to := cursor.Range(weekStart)
	fromDate := from.Format(calendar.DateFormat)
	toDate := to.Format(calendar.DateFormat)

	version, err := uc.repo.GetDataVersion(ctx, salon.ID, fromDate, toDate, in.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("read data version of salon %d: %w", salon.ID, err)
	}

	key := layoutKey(salon.ID, cursor, today, rtl, in, version)

	var cached dto.CalendarLayoutDTO
	switch err := uc.cache.Get(ctx, key, &cached); {
	case err == nil:
		uc.metrics.CacheHit()
		return &cached, nil
	case !errors.Is(err, cache.ErrCacheMiss):
		uc.log.Warn("layout cache read failed", zap.String("key", key), zap.Error(err))
	}
	uc.metrics.CacheMiss()

	hours, err := uc.repo.ListWorkingHours(ctx, salon.ID)
	if err != nil {
		return nil, fmt.Errorf("list working hours of salon %d: %w", salon.ID, err)
	}
	window := calendar.ResolveBounds(domain.ToWorkingHourRecords(hours), uc.cfg.Window())

	bookings, err := uc.repo.ListBookingsForPeriod(
		ctx,
		salon.ID,
		fromDate,
		toDate,
		in.EmployeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list bookings of salon %d: %w", salon.ID, err)
	}

	events := calendar.Project(domain.ToBookingRecords(bookings), calendar.ProjectOptions{
		Today:        today,
		Placeholders: calendar.DefaultPlaceholders,
	})
	if in.HideCancelled {
		events = domain.WithoutCancelled(events)
	}

	out := &dto.CalendarLayoutDTO{
		View:   string(cursor.View),
		Date:   cursor.Date.Format(calendar.DateFormat),
		From:   fromDate,
		To:     toDate,
		Today:  today.Format(calendar.DateFormat),
		RTL:    rtl,
		Window: toWindowDTO(window),
	}

	grid := uc.cfg.Grid()
	grid.RTL = rtl

	var peaks []int
	if cursor.View == calendar.ViewMonth {
		month := calendar.BuildMonth(events, cursor.Date, weekStart, uc.cfg.MonthMaxVisible)
		out.Month = toMonthDTO(month, window, grid)
	} else {
		cols := calendar.BuildTimeGrid(events, cursor.Days(weekStart), window, grid)
		out.Days = toDayColumnsDTO(cols)
		for _, col := range cols {
			if len(col.Events) > 0 {
				peaks = append(peaks, col.MaxLanes)
			}
		}
	}

	uc.metrics.ObserveLayout(string(cursor.View), len(events), peaks)
	uc.log.Debug("calendar layout computed",
		zap.Uint("salon_id", salon.ID),
		zap.String("view", out.View),
		zap.String("from", out.From),
		zap.String("to", out.To),
		zap.Int("events", len(events)),
	)

	if err := uc.cache.Set(ctx, key, out); err != nil {
		uc.log.Warn("layout cache write failed", zap.String("key", key), zap.Error(err))
	}

	return out, nil
}

func loadSalon(ctx context.Context, repo domain.Repository, id uint) (*models.Salon, error) {
	salon, err := repo.GetSalonByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSalonNotFound)
		}
		return nil, fmt.Errorf("load salon %d: %w", id, err)
	}
	return salon, nil
}

// layoutKey identifies one rendered layout. The data version makes any
// booking or working-hours change miss the cache.
func layoutKey(salonID uint, c calendar.Cursor, today time.Time, rtl bool, in LayoutInput, v domain.DataVersion) string {
	employee := "all"
	if in.EmployeeID != nil {
		employee = strconv.FormatUint(uint64(*in.EmployeeID), 10)
	}
	return strings.Join([]string{
		strconv.FormatUint(uint64(salonID), 10),
		string(c.View),
		c.Date.Format(calendar.DateFormat),
		today.Format(calendar.DateFormat),
		strconv.FormatBool(rtl),
		employee,
		strconv.FormatBool(in.HideCancelled),
		v.String(),
	}, ":")
}
