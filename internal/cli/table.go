package cli

import (
	"fmt"
	"io"
	"iter"

	"github.com/yigit/registrar/internal/app/models"
)

const (
	headerFormat = "%-10s %-30s %-40s %5s %10s\n"
	rowFormat    = "%-10s %-30s %-40s %5d %10d\n"
)

// WriteCourseTable writes the column header followed by one row per course
func WriteCourseTable(w io.Writer, courses iter.Seq[models.Course]) {
	fmt.Fprintf(w, headerFormat, "Code", "Title", "Description", "Capacity", "Enrolled")
	for c := range courses {
		fmt.Fprint(w, FormatCourse(c))
	}
}

// FormatCourse renders one course as a table row
func FormatCourse(c models.Course) string {
	return fmt.Sprintf(rowFormat, c.Code, c.Title, c.Description, c.Capacity, c.Enrolled)
}
