// Package cli implements the line-oriented registration menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/registrar/internal/app/services"
	"github.com/yigit/registrar/internal/pkg/apperrors"
)

// Menu choices
const (
	ChoiceAddStudent     = 1
	ChoiceListCourses    = 2
	ChoiceRegister       = 3
	ChoiceDrop           = 4
	ChoiceStudentCourses = 5
	ChoiceExit           = 6
)

const (
	menuTitle   = "Student Course Registration System"
	exitMessage = "Thank you for using the Student Course Registration System. Have a great day!"
	byeMessage  = "Thank you for using the Student Course Registration System. Goodbye!"
)

// Options configure a Menu
type Options struct {
	// Banner prints the title line above the option list
	Banner bool
	Logger zerolog.Logger
}

// Menu drives the registration service from line-based input
type Menu struct {
	svc    services.RegistrationService
	in     *bufio.Scanner
	out    io.Writer
	banner bool
	logger zerolog.Logger
}

// NewMenu creates a menu reading from in and writing to out
func NewMenu(svc services.RegistrationService, in io.Reader, out io.Writer, opts Options) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		banner: opts.Banner,
		logger: opts.Logger.With().Str("component", "menu").Logger(),
	}
}

// errInputClosed ends the session when input runs out
var errInputClosed = errors.New("input closed")

// Run serves menu actions until the user exits, declines to continue, the
// input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		line, err := m.readLine()
		if err != nil {
			return m.closed(err)
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = 0
		}
		if choice == ChoiceExit {
			m.println(exitMessage)
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			return m.closed(err)
		}

		m.printf("Do you want to continue? (yes/no): ")
		answer, err := m.readLine()
		if err != nil {
			return m.closed(err)
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			m.println(byeMessage)
			return nil
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice int) error {
	m.logger.Debug().Int("choice", choice).Msg("Menu action")
	switch choice {
	case ChoiceAddStudent:
		return m.addStudent(ctx)
	case ChoiceListCourses:
		m.displayCourses(ctx)
		return nil
	case ChoiceRegister:
		return m.registerCourse(ctx)
	case ChoiceDrop:
		return m.dropCourse(ctx)
	case ChoiceStudentCourses:
		return m.studentCourses(ctx)
	default:
		m.println("Invalid choice. Please try again.")
		return nil
	}
}

func (m *Menu) addStudent(ctx context.Context) error {
	id, err := m.prompt("Enter student ID: ")
	if err != nil {
		return err
	}
	name, err := m.prompt("Enter student name: ")
	if err != nil {
		return err
	}

	if _, err := m.svc.AddStudent(ctx, id, name); err != nil {
		m.println(messageFor(err))
		return nil
	}

	m.displayCourses(ctx)
	line, err := m.prompt("Select courses for registration (enter course codes separated by commas):\n")
	if err != nil {
		return err
	}

	for _, code := range strings.Split(line, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		course, err := m.svc.RegisterStudent(ctx, id, code)
		switch {
		case err == nil:
			m.println(fmt.Sprintf("Registered for %s successfully.", course.Title))
		case errors.Is(err, apperrors.ErrAlreadyRegistered):
			m.println(fmt.Sprintf("Already registered for %s.", code))
		default:
			m.println(fmt.Sprintf("Course %s is not available or does not exist.", code))
		}
	}
	return nil
}

func (m *Menu) displayCourses(ctx context.Context) {
	m.println("\nAvailable Courses:")
	WriteCourseTable(m.out, m.svc.DisplayCourses(ctx))
}

func (m *Menu) registerCourse(ctx context.Context) error {
	id, code, err := m.promptStudentAndCourse()
	if err != nil {
		return err
	}

	if _, err := m.svc.RegisterStudent(ctx, id, code); err != nil {
		m.println(messageFor(err))
		return nil
	}
	m.println("Registration successful.")
	return nil
}

func (m *Menu) dropCourse(ctx context.Context) error {
	id, code, err := m.promptStudentAndCourse()
	if err != nil {
		return err
	}

	if _, err := m.svc.DropCourse(ctx, id, code); err != nil {
		m.println(messageFor(err))
		return nil
	}
	m.println("Course dropped successfully.")
	return nil
}

func (m *Menu) studentCourses(ctx context.Context) error {
	id, err := m.prompt("Enter student ID: ")
	if err != nil {
		return err
	}

	courses, err := m.svc.DisplayStudentCourses(ctx, id)
	if err != nil {
		m.println(messageFor(err))
		return nil
	}
	student, err := m.svc.GetStudent(ctx, id)
	if err != nil {
		m.println(messageFor(err))
		return nil
	}

	m.println(fmt.Sprintf("\n%s's Registered Courses:", student.Name))
	WriteCourseTable(m.out, courses)
	return nil
}

func (m *Menu) promptStudentAndCourse() (string, string, error) {
	id, err := m.prompt("Enter student ID: ")
	if err != nil {
		return "", "", err
	}
	code, err := m.prompt("Enter course code: ")
	if err != nil {
		return "", "", err
	}
	return id, code, nil
}

// messageFor turns a service error into the text shown to the user
func messageFor(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateID):
		return "Student with this ID already exists."
	case errors.Is(err, apperrors.ErrStudentNotFound):
		return "Student not found."
	case errors.Is(err, apperrors.ErrCourseNotFound):
		return "Course not found."
	case errors.Is(err, apperrors.ErrCourseFull):
		return "Course is full."
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		return "Student is already registered for this course."
	case errors.Is(err, apperrors.ErrNotRegistered):
		return "Student is not registered for this course."
	case errors.Is(err, apperrors.ErrValidationFailed):
		return "Student ID and name are required."
	default:
		return "Something went wrong: " + err.Error()
	}
}

func (m *Menu) printMenu() {
	if m.banner {
		m.println("\n" + menuTitle)
	}
	m.println("1. Register a New Student")
	m.println("2. Display Courses")
	m.println("3. Register for a Course")
	m.println("4. Drop a Course")
	m.println("5. Display Registered Courses")
	m.println("6. Exit")
	m.printf("Choose an option: ")
}

func (m *Menu) prompt(text string) (string, error) {
	m.printf("%s", text)
	line, err := m.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}
	return m.in.Text(), nil
}

// closed treats exhausted input as a normal end of session
func (m *Menu) closed(err error) error {
	if errors.Is(err, errInputClosed) {
		m.println("")
		m.logger.Debug().Msg("Input closed, ending session")
		return nil
	}
	return fmt.Errorf("reading input: %w", err)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}
