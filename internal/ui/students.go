package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newStudentsScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.Student]{
		screenID: "students",
		name:     "Students",
		columns: []column{
			{"Name", 24},
			{"Email", 28},
			{"Class", 14},
			{"Guardian", 14},
		},
		cells: func(s api.Student) []string {
			class := s.ClassName
			if class == "" {
				class = s.ClassID
			}
			return []string{s.Name, s.Email, class, s.GuardianPhone}
		},
		rowID:    func(s api.Student) string { return s.ID },
		rowLabel: func(s api.Student) string { return s.Name },

		searchable: true,

		fetch: func(ctx context.Context, q resource.Query) ([]api.Student, api.Meta, error) {
			return client.ListStudents(ctx, q.Options())
		},

		formTitle: "student",
		formFields: []formField{
			{key: "name", label: "Name", required: true},
			{key: "email", label: "Email", required: true},
			{key: "gender", label: "Gender", placeholder: "male / female / other"},
			{key: "classId", label: "Class ID"},
			{key: "guardianPhone", label: "Guardian phone"},
			{key: "address", label: "Address"},
		},
		formValues: func(s api.Student) map[string]string {
			return map[string]string{
				"name":          s.Name,
				"email":         s.Email,
				"gender":        s.Gender,
				"classId":       s.ClassID,
				"guardianPhone": s.GuardianPhone,
				"address":       s.Address,
			}
		},

		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateStudent(ctx, studentParams(values))
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			_, err := client.UpdateStudent(ctx, id, studentParams(values))
			return err
		},
		remove: client.DeleteStudent,
	})
}

func studentParams(values map[string]string) api.StudentParams {
	return api.StudentParams{
		Name:          values["name"],
		Email:         values["email"],
		Gender:        values["gender"],
		ClassID:       values["classId"],
		GuardianPhone: values["guardianPhone"],
		Address:       values["address"],
	}
}
