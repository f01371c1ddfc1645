package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newSubjectsScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.Subject]{
		screenID: "subjects",
		name:     "Subjects",
		columns: []column{
			{"Name", 24},
			{"Code", 10},
			{"Class", 14},
		},
		cells: func(s api.Subject) []string {
			return []string{s.Name, s.Code, s.ClassID}
		},
		rowID:    func(s api.Subject) string { return s.ID },
		rowLabel: func(s api.Subject) string { return s.Name },

		searchable:  true,
		loadOptions: classFilter(client, "classId", "class", true),

		fetch: func(ctx context.Context, q resource.Query) ([]api.Subject, api.Meta, error) {
			return client.ListSubjects(ctx, q.Options())
		},

		formTitle: "subject",
		formFields: []formField{
			{key: "name", label: "Name", required: true},
			{key: "code", label: "Code", required: true},
			{key: "classId", label: "Class ID"},
		},
		formValues: func(s api.Subject) map[string]string {
			return map[string]string{
				"name":    s.Name,
				"code":    s.Code,
				"classId": s.ClassID,
			}
		},

		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateSubject(ctx, subjectParams(values))
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			_, err := client.UpdateSubject(ctx, id, subjectParams(values))
			return err
		},
		remove: client.DeleteSubject,
	})
}

func subjectParams(values map[string]string) api.SubjectParams {
	return api.SubjectParams{
		Name:    values["name"],
		Code:    values["code"],
		ClassID: values["classId"],
	}
}
