package clicker

import "math"

// CostGrowth is the price multiplier applied per purchase.
const CostGrowth = 1.15

// Upgrade is a purchasable level track.
type Upgrade struct {
	Name     string
	BaseCost int
	Level    int
	Bought   int
}

// Cost returns floor(BaseCost * 1.15^Bought).
func (u Upgrade) Cost() int {
	return int(math.Floor(float64(u.BaseCost) * math.Pow(CostGrowth, float64(u.Bought))))
}

func newClickPower() Upgrade { return Upgrade{Name: "Power", BaseCost: 10, Level: 1} }
func newAutoClicker() Upgrade { return Upgrade{Name: "Auto", BaseCost: 50} }
