package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhitby/chalk/internal/api"
	"github.com/mwhitby/chalk/internal/resource"
)

func newAttendanceScreen(d deps) screen {
	client := d.client
	return newListScreen(d, listConfig[api.AttendanceRecord]{
		screenID: "attendance",
		name:     "Attendance",
		columns: []column{
			{"Date", 12},
			{"Class", 16},
			{"Present", 8},
			{"Absent", 8},
		},
		cells: func(r api.AttendanceRecord) []string {
			class := r.ClassName
			if class == "" {
				class = r.ClassID
			}
			return []string{r.Date, class, itoa(r.Present), itoa(r.Absent)}
		},
		rowID:    func(r api.AttendanceRecord) string { return r.ID },
		rowLabel: func(r api.AttendanceRecord) string { return r.Date + " " + r.ClassName },

		loadOptions: classFilter(client, "classId", "class", true),

		fetch: func(ctx context.Context, q resource.Query) ([]api.AttendanceRecord, api.Meta, error) {
			return client.ListAttendance(ctx, q.Options())
		},

		formTitle: "attendance",
		formFields: []formField{
			{key: "classId", label: "Class ID", required: true},
			{key: "date", label: "Date", placeholder: "2026-01-31", required: true},
			{key: "entries", label: "Entries", placeholder: "studentId:present, studentId:absent, …", required: true},
		},

		create: func(ctx context.Context, values map[string]string) error {
			entries, err := parseAttendanceEntries(values["entries"])
			if err != nil {
				return err
			}
			_, err = client.MarkAttendance(ctx, api.MarkAttendanceParams{
				ClassID: values["classId"],
				Date:    values["date"],
				Entries: entries,
			})
			return err
		},
		remove: client.DeleteAttendance,

		extras: []extraForm{
			{
				key:   "m",
				label: "Amend entry",
				fields: []formField{
					{key: "studentId", label: "Student ID", required: true},
					{key: "status", label: "Status", placeholder: "present / absent / late", required: true},
				},
				submit: func(ctx context.Context, id string, values map[string]string) error {
					_, err := client.UpdateAttendanceEntry(ctx, id, api.RecordEntryParams{
						StudentID: values["studentId"],
						Status:    strings.ToLower(values["status"]),
					})
					return err
				},
			},
		},
	})
}

// parseAttendanceEntries turns "id:status, id:status" into entries.
func parseAttendanceEntries(raw string) ([]api.AttendanceEntry, error) {
	var entries []api.AttendanceEntry
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, status, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("entry %q must be studentId:status", part)
		}
		entries = append(entries, api.AttendanceEntry{
			StudentID: strings.TrimSpace(id),
			Status:    strings.ToLower(strings.TrimSpace(status)),
		})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("at least one studentId:status entry is required")
	}
	return entries, nil
}
