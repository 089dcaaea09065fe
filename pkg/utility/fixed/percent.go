package fixed

// Percent returns rate percent of p, e.g. FromInt(8000, 0).Percent(New(25, 2)) is 20.
func (p Point) Percent(rate Point) Point {
	return p.Mul(rate).Div(Hundred)
}

// PercentChange returns how many percent end differs from start. Start must not be zero.
func PercentChange(start, end Point) Point {
	return end.Sub(start).Div(start).Mul(Hundred)
}

// AddPercent moves p by rate percent, a negative rate moves it down.
func (p Point) AddPercent(rate Point) Point {
	return p.Percent(rate).Add(p)
}
