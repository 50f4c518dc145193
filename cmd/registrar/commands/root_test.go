package commands

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCmd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(input), &out, &errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml"), "--log-level", "disabled"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestCoursesCommand(t *testing.T) {
	out, err := runCmd(t, "", "courses")
	if err != nil {
		t.Fatalf("courses: %v", err)
	}
	for _, code := range []string{"CS101", "MATH201", "BIO301"} {
		if !strings.Contains(out, code) {
			t.Errorf("missing %s in\n%s", code, out)
		}
	}
	if strings.Index(out, "CS101") > strings.Index(out, "BIO301") {
		t.Fatalf("catalog not in catalog order:\n%s", out)
	}
}

func TestRootRunsMenu(t *testing.T) {
	out, err := runCmd(t, "1\nS1\nAlice\nCS101\nyes\n6\n")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if !strings.Contains(out, "Registered for Introduction to Programming successfully.") {
		t.Fatalf("unexpected output\n%s", out)
	}
	if !strings.Contains(out, "Have a great day!") {
		t.Fatalf("missing exit message\n%s", out)
	}
}

func TestServeRejectsArgs(t *testing.T) {
	if _, err := runCmd(t, "", "serve", "extra"); err == nil {
		t.Fatalf("expected error for unexpected argument")
	}
}
