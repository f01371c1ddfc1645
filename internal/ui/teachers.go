package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newTeachersScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.Teacher]{
		screenID: "teachers",
		name:     "Teachers",
		columns: []column{
			{"Name", 24},
			{"Email", 28},
			{"Phone", 14},
			{"Qualification", 20},
		},
		cells: func(t api.Teacher) []string {
			return []string{t.Name, t.Email, t.Phone, t.Qualification}
		},
		rowID:    func(t api.Teacher) string { return t.ID },
		rowLabel: func(t api.Teacher) string { return t.Name },

		searchable: true,

		fetch: func(ctx context.Context, q resource.Query) ([]api.Teacher, api.Meta, error) {
			return client.ListTeachers(ctx, q.Options())
		},

		formTitle: "teacher",
		formFields: []formField{
			{key: "name", label: "Name", required: true},
			{key: "email", label: "Email", required: true},
			{key: "phone", label: "Phone"},
			{key: "qualification", label: "Qualification"},
		},
		// List rows can be abridged server-side, so edits pre-populate
		// from the detail endpoint.
		detail: func(ctx context.Context, id string) (map[string]string, error) {
			teacher, err := client.GetTeacher(ctx, id)
			if err != nil {
				return nil, err
			}
			return map[string]string{
				"name":          teacher.Name,
				"email":         teacher.Email,
				"phone":         teacher.Phone,
				"qualification": teacher.Qualification,
			}, nil
		},

		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateTeacher(ctx, teacherParams(values))
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			_, err := client.UpdateTeacher(ctx, id, teacherParams(values))
			return err
		},
		remove: client.DeleteTeacher,
	})
}

func teacherParams(values map[string]string) api.TeacherParams {
	return api.TeacherParams{
		Name:          values["name"],
		Email:         values["email"],
		Phone:         values["phone"],
		Qualification: values["qualification"],
	}
}
