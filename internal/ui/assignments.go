package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

// newAssignmentsScreen lists teacher-subject-class assignments. When
// fixedTeacher is set (a teacher viewing their own load) the teacher
// filter is pinned and creation/removal is disabled.
func newAssignmentsScreen(d deps, fixedTeacher string) screen {
	client := d.client
	cfg := listConfig[api.Assignment]{
		screenID: "assignments",
		name:     "Assignments",
		columns: []column{
			{"Teacher", 22},
			{"Subject", 16},
			{"Class", 16},
		},
		cells: func(a api.Assignment) []string {
			teacher := a.TeacherName
			if teacher == "" {
				teacher = a.TeacherID
			}
			return []string{teacher, a.SubjectID, a.ClassID}
		},
		rowID:    func(a api.Assignment) string { return a.ID },
		rowLabel: func(a api.Assignment) string { return a.TeacherName + " / " + a.SubjectID },

		fetch: func(ctx context.Context, q resource.Query) ([]api.Assignment, api.Meta, error) {
			opts := q.Options()
			if fixedTeacher != "" {
				if opts.Filters == nil {
					opts.Filters = map[string]string{}
				}
				opts.Filters["teacherId"] = fixedTeacher
			}
			return client.ListAssignments(ctx, opts)
		},

		formTitle: "assignment",
		formFields: []formField{
			{key: "teacherId", label: "Teacher ID", required: true},
			{key: "subjectId", label: "Subject ID", required: true},
			{key: "classId", label: "Class ID", required: true},
		},
		// Assignments are replace-only: created and deleted, never
		// edited.
		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateAssignment(ctx, api.AssignmentParams{
				TeacherID: values["teacherId"],
				SubjectID: values["subjectId"],
				ClassID:   values["classId"],
			})
			return err
		},
		remove: client.DeleteAssignment,
	}

	if fixedTeacher == "" {
		cfg.loadOptions = teacherFilter(client)
	} else {
		cfg.create = nil
		cfg.remove = nil
	}
	return newListScreen(d, cfg)
}
