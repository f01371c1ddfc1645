package ui

import (
	"context"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newTimetableScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.TimetableEntry]{
		screenID: "timetable",
		name:     "Timetable",
		columns: []column{
			{"Day", 10},
			{"Start", 6},
			{"End", 6},
			{"Subject", 16},
			{"Teacher", 16},
		},
		cells: func(t api.TimetableEntry) []string {
			return []string{t.Day, t.StartTime, t.EndTime, t.SubjectID, t.TeacherID}
		},
		rowID:    func(t api.TimetableEntry) string { return t.ID },
		rowLabel: func(t api.TimetableEntry) string { return t.Day + " " + t.StartTime },

		// Timetables exist per class only; nothing is fetched until a
		// class is chosen.
		loadOptions:   classFilter(client, "classId", "class", false),
		requireFilter: "classId",

		fetch: func(ctx context.Context, q resource.Query) ([]api.TimetableEntry, api.Meta, error) {
			return client.ListTimetable(ctx, q.Filters["classId"], q.Options())
		},

		formTitle: "timetable entry",
		formFields: []formField{
			{key: "classId", label: "Class ID", required: true},
			{key: "subjectId", label: "Subject ID", required: true},
			{key: "teacherId", label: "Teacher ID", required: true},
			{key: "day", label: "Day", placeholder: "monday", required: true},
			{key: "startTime", label: "Start", placeholder: "08:30", required: true},
			{key: "endTime", label: "End", placeholder: "09:15", required: true},
		},
		formValues: func(t api.TimetableEntry) map[string]string {
			return map[string]string{
				"classId":   t.ClassID,
				"subjectId": t.SubjectID,
				"teacherId": t.TeacherID,
				"day":       t.Day,
				"startTime": t.StartTime,
				"endTime":   t.EndTime,
			}
		},

		create: func(ctx context.Context, values map[string]string) error {
			_, err := client.CreateTimetableEntry(ctx, timetableParams(values))
			return err
		},
		update: func(ctx context.Context, id string, values map[string]string) error {
			_, err := client.UpdateTimetableEntry(ctx, id, timetableParams(values))
			return err
		},
		remove: client.DeleteTimetableEntry,
	})
}

func timetableParams(values map[string]string) api.TimetableParams {
	return api.TimetableParams{
		ClassID:   values["classId"],
		SubjectID: values["subjectId"],
		TeacherID: values["teacherId"],
		Day:       values["day"],
		StartTime: values["startTime"],
		EndTime:   values["endTime"],
	}
}
