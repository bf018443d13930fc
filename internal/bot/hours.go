package bot

import "time"

// HoursGate decides whether a new order may start right now. The closing
// hour itself still counts as open: the storefront takes orders up to and
// including the stroke of midnight.
type HoursGate struct {
	openHour  int
	closeHour int
	now       func() time.Time
}

func NewHoursGate(openHour, closeHour int) *HoursGate {
	return &HoursGate{
		openHour:  openHour,
		closeHour: closeHour,
		now:       time.Now,
	}
}

func (g *HoursGate) IsOpen() bool {
	h := g.now().Hour()
	return h >= g.openHour || h == g.closeHour
}

func (g *HoursGate) OpenHour() int  { return g.openHour }
func (g *HoursGate) CloseHour() int { return g.closeHour }
