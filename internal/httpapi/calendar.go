package httpapi

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ngrash/go-cal/caldate"
	"github.com/ngrash/go-cal/picker"
)

type cellView struct {
	Date         string `json:"date"`
	Day          int    `json:"day"`
	Label        string `json:"label"`
	State        string `json:"state"`
	Selected     bool   `json:"selected"`
	Today        bool   `json:"today"`
	CurrentMonth bool   `json:"currentMonth"`
	Disabled     bool   `json:"disabled"`
	Hidden       bool   `json:"hidden"`
}

type monthView struct {
	Month       string       `json:"month"`
	Title       string       `json:"title"`
	Selected    string       `json:"selected,omitempty"`
	Weekdays    []string     `json:"weekdays"`
	WeekNumbers []int        `json:"weekNumbers,omitempty"`
	Weeks       [][]cellView `json:"weeks"`
}

type selectRequest struct {
	Month    string `json:"month"`
	Selected string `json:"selected"`
	Date     string `json:"date"`
}

type selectResponse struct {
	Selected string `json:"selected,omitempty"`
	Changed  bool   `json:"changed"`
}

type keyRequest struct {
	Month    string `json:"month"`
	Selected string `json:"selected"`
	Focused  string `json:"focused"`
	Key      string `json:"key"`
}

type keyResponse struct {
	Month          string `json:"month"`
	Selected       string `json:"selected,omitempty"`
	Focus          string `json:"focus,omitempty"`
	PreventDefault bool   `json:"preventDefault"`
}

// GetMonth renders the grid of a month.
//
//	GET /api/month?month=2024-02&selected=2024-02-14
func (h *Handler) GetMonth(c *fiber.Ctx) error {
	p, err := h.newPicker(c, c.Query("month"), c.Query("selected"))
	if err != nil {
		return err
	}
	return c.JSON(buildMonthView(p))
}

// PostSelect selects a date.
func (h *Handler) PostSelect(c *fiber.Ctx) error {
	var req selectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	date, err := parseRequiredDate("date", req.Date)
	if err != nil {
		return err
	}
	p, err := h.newPicker(c, req.Month, req.Selected)
	if err != nil {
		return err
	}
	changed := p.SelectDate(date)
	return c.JSON(selectResponse{Selected: selectedString(p), Changed: changed})
}

// PostKey applies a key press on the focused date.
func (h *Handler) PostKey(c *fiber.Ctx) error {
	var req keyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	focused, err := parseRequiredDate("focused", req.Focused)
	if err != nil {
		return err
	}
	key := picker.ParseKey(req.Key)
	if key == picker.KeyNone {
		return fiber.NewError(fiber.StatusBadRequest, "unsupported key "+strconv.Quote(req.Key))
	}
	p, err := h.newPicker(c, req.Month, req.Selected)
	if err != nil {
		return err
	}

	res := p.HandleKey(key, focused)
	resp := keyResponse{
		Month:          p.Month().String(),
		Selected:       selectedString(p),
		PreventDefault: res.PreventDefault,
	}
	if target, ok := p.TakeFocus(); ok {
		resp.Focus = target.String()
	}
	return c.JSON(resp)
}

func (h *Handler) newPicker(c *fiber.Ctx, month, selected string) (*picker.Picker, error) {
	cfg := h.currentConfig()
	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opts.Formatter = cfg.Formatter(c.Get(fiber.HeaderAcceptLanguage))
	opts.Clock = h.clock
	opts.Logger = h.logger

	if month != "" {
		ym, err := caldate.ParseYearMonth(month)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		opts.Month = ym
	}
	var initial *caldate.Date
	if selected != "" {
		d, err := caldate.Parse(selected)
		if err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "selected: "+err.Error())
		}
		initial = &d
	}
	opts.Selection = picker.Owned(initial)
	return picker.New(opts), nil
}

func buildMonthView(p *picker.Picker) monthView {
	view := monthView{
		Month:    p.Month().String(),
		Title:    p.Title(),
		Selected: selectedString(p),
		Weekdays: p.WeekdayLabels(),
	}
	if p.ShowWeekNumbers() {
		view.WeekNumbers = p.WeekNumbers()
	}
	for _, week := range p.Weeks() {
		row := make([]cellView, len(week))
		for i, cell := range week {
			row[i] = cellView{
				Date:         cell.Key(),
				Day:          cell.Date.Day,
				Label:        cell.Label(),
				State:        cell.State.String(),
				Selected:     cell.Selected,
				Today:        cell.Today,
				CurrentMonth: cell.CurrentMonth,
				Disabled:     cell.Disabled,
				Hidden:       cell.Hidden,
			}
		}
		view.Weeks = append(view.Weeks, row)
	}
	return view
}

func selectedString(p *picker.Picker) string {
	if d, ok := p.Selected(); ok {
		return d.String()
	}
	return ""
}

func parseRequiredDate(field, s string) (caldate.Date, error) {
	if s == "" {
		return caldate.Date{}, fiber.NewError(fiber.StatusBadRequest, field+" is required")
	}
	d, err := caldate.Parse(s)
	if err != nil {
		return caldate.Date{}, fiber.NewError(fiber.StatusBadRequest, field+": "+err.Error())
	}
	return d, nil
}
