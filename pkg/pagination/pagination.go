package pagination

// Params represents offset pagination input (skip N rows, return up to PerPage)
type Params struct {
	Skip    int `form:"skip" json:"skip"`
	PerPage int `form:"per_page" json:"per_page"`
}

// DefaultParams returns default pagination values
func DefaultParams() *Params {
	return &Params{
		Skip:    0,
		PerPage: 10,
	}
}

// Validate ensures pagination parameters are within valid ranges
func (p *Params) Validate() {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.PerPage < 1 {
		p.PerPage = 10
	}
	if p.PerPage > 100 {
		p.PerPage = 100
	}
}

// Offset returns the offset for SQL queries
func (p *Params) Offset() int {
	return p.Skip
}

// Limit returns the row limit for SQL queries
func (p *Params) Limit() int {
	return p.PerPage
}
