package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newClassesScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.Class]{
		screenID: "classes",
		name:     "Classes",
		columns: []column{
			{"Name", 20},
			{"Grade", 8},
			{"Section", 8},
			{"Students", 8},
		},
		cells: func(c api.Class) []string {
			return []string{c.Name, c.Grade, c.Section, itoa(c.Students)}
		},
		rowID:    func(c api.Class) string { return c.ID },
		rowLabel: func(c api.Class) string { return c.Name },

		searchable: true,

		fetch: func(ctx context.Context, q resource.Query) ([]api.Class, api.Meta, error) {
			return client.ListClasses(ctx, q.Options())
		},

		formTitle: "class",
		formFields: []formField{
			{key: "name", label: "Name", required: true},
			{key: "grade", label: "Grade", required: true},
			{key: "section", label: "Section"},
			{key: "teacherId", label: "Homeroom teacher ID"},
		},
		formValues: func(c api.Class) map[string]string {
			return map[string]string{
				"name":      c.Name,
				"grade":     c.Grade,
				"section":   c.Section,
				"teacherId": c.TeacherID,
			}
		},

		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateClass(ctx, classParams(values))
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			_, err := client.UpdateClass(ctx, id, classParams(values))
			return err
		},
		remove: client.DeleteClass,
	})
}

func classParams(values map[string]string) api.ClassParams {
	return api.ClassParams{
		Name:      values["name"],
		Grade:     values["grade"],
		Section:   values["section"],
		TeacherID: values["teacherId"],
	}
}
