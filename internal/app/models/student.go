package models

import (
	"encoding/json"
	"sort"
)

// CourseSet is an unordered set of course codes
type CourseSet map[string]struct{}

// NewCourseSet creates a set holding the given codes
func NewCourseSet(codes ...string) CourseSet {
	set := make(CourseSet, len(codes))
	for _, code := range codes {
		set.Add(code)
	}
	return set
}

// Add inserts a code. Adding an existing code changes nothing.
func (s CourseSet) Add(code string) {
	s[code] = struct{}{}
}

// Remove deletes a code. Removing a missing code changes nothing.
func (s CourseSet) Remove(code string) {
	delete(s, code)
}

// Has reports whether code is in the set
func (s CourseSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Len returns the number of codes in the set
func (s CourseSet) Len() int {
	return len(s)
}

// Codes returns the codes sorted ascending
func (s CourseSet) Codes() []string {
	codes := make([]string, 0, len(s))
	for code := range s {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Clone returns an independent copy of the set
func (s CourseSet) Clone() CourseSet {
	clone := make(CourseSet, len(s))
	for code := range s {
		clone[code] = struct{}{}
	}
	return clone
}

// MarshalJSON encodes the set as a sorted list of codes
func (s CourseSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Codes())
}

// Student defines a learner and the course codes they are registered in
type Student struct {
	ID                string    `json:"id" example:"S1"`                               // Unique student identifier
	Name              string    `json:"name" example:"Alice"`                          // Display name
	RegisteredCourses CourseSet `json:"registeredCourses" swaggertype:"array,string"` // Codes of registered courses
}

// NewStudent creates a student with no registered courses
func NewStudent(id, name string) *Student {
	return &Student{
		ID:                id,
		Name:              name,
		RegisteredCourses: NewCourseSet(),
	}
}

// RegisterCourse adds code to the student's registered courses
func (s *Student) RegisterCourse(code string) {
	s.RegisteredCourses.Add(code)
}

// DropCourse removes code from the student's registered courses
func (s *Student) DropCourse(code string) {
	s.RegisteredCourses.Remove(code)
}

// IsRegistered reports whether the student is registered for code
func (s *Student) IsRegistered(code string) bool {
	return s.RegisteredCourses.Has(code)
}

// Clone returns a deep copy of the student
func (s *Student) Clone() *Student {
	return &Student{
		ID:                s.ID,
		Name:              s.Name,
		RegisteredCourses: s.RegisteredCourses.Clone(),
	}
}
