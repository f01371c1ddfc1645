package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newExamsScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.Exam]{
		screenID: "exams",
		name:     "Exams",
		columns: []column{
			{"Name", 24},
			{"Subject", 14},
			{"Class", 14},
			{"Date", 12},
			{"Max", 6},
		},
		cells: func(e api.Exam) []string {
			return []string{e.Name, e.SubjectID, e.ClassID, e.Date, itoa(e.MaxMarks)}
		},
		rowID:    func(e api.Exam) string { return e.ID },
		rowLabel: func(e api.Exam) string { return e.Name },

		searchable:  true,
		loadOptions: classFilter(client, "classId", "class", true),

		fetch: func(ctx context.Context, q resource.Query) ([]api.Exam, api.Meta, error) {
			return client.ListExams(ctx, q.Options())
		},

		// Exams are append-only: no update, no delete.
		formTitle: "exam",
		formFields: []formField{
			{key: "name", label: "Name", required: true},
			{key: "subjectId", label: "Subject ID", required: true},
			{key: "classId", label: "Class ID", required: true},
			{key: "date", label: "Date", placeholder: "2026-06-15", required: true},
			{key: "maxMarks", label: "Max marks", placeholder: "100", required: true},
		},
		create: func(ctx context.Context, values map[string]string) error {
			maxMarks, err := strconv.Atoi(values["maxMarks"])
			if err != nil {
				return fmt.Errorf("max marks must be a whole number")
			}
			_, err = client.CreateExam(ctx, api.ExamParams{
				Name:      values["name"],
				SubjectID: values["subjectId"],
				ClassID:   values["classId"],
				Date:      values["date"],
				MaxMarks:  maxMarks,
			})
			return err
		},

		extras: []extraForm{
			{
				key:   "m",
				label: "Record grade",
				fields: []formField{
					{key: "studentId", label: "Student ID", required: true},
					{key: "marks", label: "Marks", required: true},
				},
				submit: func(ctx context.Context, id string, values map[string]string) error {
					marks, err := strconv.ParseFloat(values["marks"], 64)
					if err != nil {
						return fmt.Errorf("marks must be a number")
					}
					return client.SubmitGrades(ctx, id, api.GradesParams{
						Grades: []api.GradeEntry{{StudentID: values["studentId"], Marks: marks}},
					})
				},
			},
		},
	})
}
