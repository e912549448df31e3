package date

// Period is a calendar span used to group dates.
type Period int

const (
	Monthly Period = iota
	Yearly
)
