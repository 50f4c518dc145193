package models

// Course represents a single course offering in the catalog.
type Course struct {
	Code        string `json:"code" example:"CS101"`
	Title       string `json:"title" example:"Introduction to Programming"`
	Description string `json:"description" example:"Learn the basics of programming."`
	Capacity    int    `json:"capacity" example:"30"`
	Enrolled    int    `json:"enrolled" example:"0"`
}

// NewCourse creates a course with no enrolled students.
func NewCourse(code, title, description string, capacity int) *Course {
	if capacity < 0 {
		capacity = 0
	}
	return &Course{
		Code:        code,
		Title:       title,
		Description: description,
		Capacity:    capacity,
	}
}

// IsAvailable reports whether at least one seat is left.
func (c *Course) IsAvailable() bool {
	return c.Enrolled < c.Capacity
}

// SeatsLeft returns the number of free seats.
func (c *Course) SeatsLeft() int {
	return c.Capacity - c.Enrolled
}

// EnrollStudent takes one seat. It does nothing when the course is full.
func (c *Course) EnrollStudent() {
	if c.IsAvailable() {
		c.Enrolled++
	}
}

// DropStudent frees one seat. It does nothing when nobody is enrolled.
func (c *Course) DropStudent() {
	if c.Enrolled > 0 {
		c.Enrolled--
	}
}
