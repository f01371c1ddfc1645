package api

import "context"

// TimetableParams are the writable timetable entry fields.
type TimetableParams struct {
	ClassID   string `json:"classId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	TeacherID string `json:"teacherId" validate:"required"`
	Day       string `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

// ListTimetable returns the schedule for one class. The server exposes
// timetables per class only, so classID is mandatory.
func (c *Client) ListTimetable(ctx context.Context, classID string, opts ListOptions) ([]TimetableEntry, Meta, error) {
	if err := requireID(classID); err != nil {
		return nil, Meta{}, err
	}
	payload, err := c.get(ctx, "/timetable/class/"+classID, opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[TimetableEntry](payload)
}

// CreateTimetableEntry schedules a period.
func (c *Client) CreateTimetableEntry(ctx context.Context, params TimetableParams) (TimetableEntry, error) {
	if err := checkParams(params); err != nil {
		return TimetableEntry{}, err
	}
	payload, err := c.post(ctx, "/timetable", params)
	if err != nil {
		return TimetableEntry{}, err
	}
	return decodeEntity[TimetableEntry](payload)
}

// UpdateTimetableEntry replaces a scheduled period.
func (c *Client) UpdateTimetableEntry(ctx context.Context, id string, params TimetableParams) (TimetableEntry, error) {
	if err := requireID(id); err != nil {
		return TimetableEntry{}, err
	}
	if err := checkParams(params); err != nil {
		return TimetableEntry{}, err
	}
	payload, err := c.put(ctx, "/timetable/"+id, params)
	if err != nil {
		return TimetableEntry{}, err
	}
	return decodeEntity[TimetableEntry](payload)
}

// DeleteTimetableEntry removes a scheduled period.
func (c *Client) DeleteTimetableEntry(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/timetable/"+id)
}
