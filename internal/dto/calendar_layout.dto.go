package dto

// GeometryDTO is the box of one event. Exactly one of Left or Right is set,
// depending on the writing direction.
type GeometryDTO struct {
	Unit   string   `json:"unit"`
	Top    float64  `json:"top"`
	Height float64  `json:"height"`
	Width  float64  `json:"width"`
	Left   *float64 `json:"left,omitempty"`
	Right  *float64 `json:"right,omitempty"`
}

type CalendarEventDTO struct {
	ID            string       `json:"id"`
	Start         string       `json:"start"`
	End           string       `json:"end"`
	Status        string       `json:"status"`
	Title         string       `json:"title"`
	ResourceID    string       `json:"resource_id"`
	ResourceLabel string       `json:"resource_label"`
	CustomerLabel string       `json:"customer_label"`
	LaneIndex     int          `json:"lane_index"`
	LaneCount     int          `json:"lane_count"`
	Geometry      *GeometryDTO `json:"geometry,omitempty"`
}

type DayColumnDTO struct {
	Date     string             `json:"date"`
	MaxLanes int                `json:"max_lanes"`
	Events   []CalendarEventDTO `json:"events"`
}

type DayCellDTO struct {
	Date     string             `json:"date"`
	InMonth  bool               `json:"in_month"`
	Events   []CalendarEventDTO `json:"events"`
	Overflow int                `json:"overflow"`
}

type MonthDTO struct {
	Year  int            `json:"year"`
	Month int            `json:"month"`
	Weeks [][]DayCellDTO `json:"weeks"`
}

type TimeWindowDTO struct {
	Start        string `json:"start"`
	End          string `json:"end"`
	TotalMinutes int    `json:"total_minutes"`
}

type CalendarLayoutDTO struct {
	View   string         `json:"view"`
	Date   string         `json:"date"`
	From   string         `json:"from"`
	To     string         `json:"to"`
	Today  string         `json:"today"`
	RTL    bool           `json:"rtl"`
	Window TimeWindowDTO  `json:"window"`
	Days   []DayColumnDTO `json:"days,omitempty"`
	Month  *MonthDTO      `json:"month,omitempty"`
}

type WorkingBoundsDTO struct {
	Window    TimeWindowDTO `json:"window"`
	IsDefault bool          `json:"is_default"`
	Timezone  string        `json:"timezone"`
}
