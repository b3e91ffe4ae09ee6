// Command academicos manages students and courses from the terminal through
// the same page model as the browser client.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joaoafonso2004/TWfrontbackend/internal/client"
	"github.com/joaoafonso2004/TWfrontbackend/internal/logger"
)

const usage = `usage: academicos [-api URL] [-yes] <command> [flags]

commands:
  list
  find-student   -nome NAME
  add-student    -nome NAME -apelido ALIAS -idade AGE -curso CODE
  edit-student   -id ID [-nome] [-apelido] [-idade] [-curso]
  delete-student -id ID
  add-course     -codigo CODE -nome NAME
  edit-course    -id ID [-codigo] [-nome]
  delete-course  -id ID
`

func main() {
	logger.Configure(logger.Config{Level: "warn", Pretty: true, Output: os.Stderr})

	apiURL := flag.String("api", envOr("ACADEMICOS_API", "http://localhost:3000"), "service base URL")
	yes := flag.Bool("yes", false, "do not ask before deleting")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	confirm := promptConfirm(os.Stdin, os.Stdout)
	if *yes {
		confirm = nil
	}
	page := client.NewPage(client.New(*apiURL, nil), confirm)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := run(ctx, page, flag.Arg(0), flag.Args()[1:], os.Stdout); err != nil {
		logger.Error().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, page *client.Page, command string, args []string, out io.Writer) error {
	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	id := fs.String("id", "", "record id")
	name := fs.String("nome", "", "student or course name")
	nickname := fs.String("apelido", "", "student alias")
	age := fs.String("idade", "", "student age")
	course := fs.String("curso", "", "student course code")
	code := fs.String("codigo", "", "course code")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Every command starts from a loaded page, courses first.
	loadErr := page.Refresh(ctx)

	switch command {
	case "list":
		render(out, page)
		return loadErr

	case "find-student":
		rows, err := page.FindStudents(ctx, *name)
		if err != nil {
			return err
		}
		for _, s := range rows {
			fmt.Fprintf(out, "%s\t%d\t%s\t%s\n", s.ID, s.Code, s.Name, s.CourseName)
		}
		return nil

	case "add-student":
		page.StudentForm = client.StudentForm{Name: *name, Nickname: *nickname, Age: *age, Course: *course}
		return page.SubmitStudent(ctx)

	case "edit-student", "delete-student":
		row, ok := page.StudentByID(*id)
		if !ok {
			return fmt.Errorf("student %q not found", *id)
		}
		page.EditStudent(row)
		if command == "delete-student" {
			return page.DeleteStudent(ctx)
		}
		override(&page.StudentForm.Name, *name)
		override(&page.StudentForm.Nickname, *nickname)
		override(&page.StudentForm.Age, *age)
		override(&page.StudentForm.Course, *course)
		return page.SubmitStudent(ctx)

	case "add-course":
		page.CourseForm = client.CourseForm{Code: *code, Name: *name}
		return page.SubmitCourse(ctx)

	case "edit-course", "delete-course":
		c, ok := page.CourseByID(*id)
		if !ok {
			return fmt.Errorf("course %q not found", *id)
		}
		page.EditCourse(c)
		if command == "delete-course" {
			return page.DeleteCourse(ctx)
		}
		override(&page.CourseForm.Code, *code)
		override(&page.CourseForm.Name, *name)
		return page.SubmitCourse(ctx)
	}
	return fmt.Errorf("unknown command %q", command)
}

func render(out io.Writer, page *client.Page) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCÓDIGO\tCURSO")
	if page.CourseStatus != "" {
		fmt.Fprintln(tw, page.CourseStatus)
	}
	for _, c := range page.Courses {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID.Hex(), c.CourseCode, c.Name)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "ID\tCC\tNOME\tAPELIDO\tIDADE\tCURSO")
	if page.StudentStatus != "" {
		fmt.Fprintln(tw, page.StudentStatus)
	}
	for _, s := range page.Students {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d\t%s\n", s.ID, s.Code, s.Name, s.Nickname, s.Age, s.CourseName)
	}
	tw.Flush()
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

func promptConfirm(in io.Reader, out io.Writer) func(string) bool {
	reader := bufio.NewReader(in)
	return func(message string) bool {
		fmt.Fprintf(out, "%s [s/N] ", message)
		answer, _ := reader.ReadString('\n')
		answer = strings.ToLower(strings.TrimSpace(answer))
		return answer == "s" || answer == "sim" || answer == "y" || answer == "yes"
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
