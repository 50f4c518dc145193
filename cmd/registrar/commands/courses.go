package commands

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/yigit/registrar/internal/cli"
)

func coursesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "Print the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			cli.WriteCourseTable(out, svc.DisplayCourses(cmd.Context()))
			return nil
		},
	}
}
