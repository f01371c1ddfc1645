package api

import "context"

// MarkAttendanceParams submit a roll call for a class and date.
type MarkAttendanceParams struct {
	ClassID string            `json:"classId" validate:"required"`
	Date    string            `json:"date" validate:"required,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

// RecordEntryParams amend one student's status on an existing record.
type RecordEntryParams struct {
	StudentID string `json:"studentId" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=present absent late"`
}

// ListAttendance pages through attendance records.
func (c *Client) ListAttendance(ctx context.Context, opts ListOptions) ([]AttendanceRecord, Meta, error) {
	payload, err := c.get(ctx, "/attendance", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[AttendanceRecord](payload)
}

// GetAttendance fetches one record including per-student entries.
func (c *Client) GetAttendance(ctx context.Context, id string) (AttendanceRecord, error) {
	if err := requireID(id); err != nil {
		return AttendanceRecord{}, err
	}
	payload, err := c.get(ctx, "/attendance/"+id, nil)
	if err != nil {
		return AttendanceRecord{}, err
	}
	return decodeEntity[AttendanceRecord](payload)
}

// MarkAttendance creates a record via the bulk marking endpoint.
func (c *Client) MarkAttendance(ctx context.Context, params MarkAttendanceParams) (AttendanceRecord, error) {
	if err := checkParams(params); err != nil {
		return AttendanceRecord{}, err
	}
	payload, err := c.post(ctx, "/attendance/mark", params)
	if err != nil {
		return AttendanceRecord{}, err
	}
	return decodeEntity[AttendanceRecord](payload)
}

// UpdateAttendanceEntry patches a single student's status on a record.
func (c *Client) UpdateAttendanceEntry(ctx context.Context, id string, params RecordEntryParams) (AttendanceRecord, error) {
	if err := requireID(id); err != nil {
		return AttendanceRecord{}, err
	}
	if err := checkParams(params); err != nil {
		return AttendanceRecord{}, err
	}
	payload, err := c.patch(ctx, "/attendance/"+id+"/record", params)
	if err != nil {
		return AttendanceRecord{}, err
	}
	return decodeEntity[AttendanceRecord](payload)
}

// DeleteAttendance removes a record.
func (c *Client) DeleteAttendance(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/attendance/"+id)
}
