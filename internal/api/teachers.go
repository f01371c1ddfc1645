package api

import "context"

// TeacherParams are the writable teacher fields.
type TeacherParams struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
}

// ListTeachers pages through teachers.
func (c *Client) ListTeachers(ctx context.Context, opts ListOptions) ([]Teacher, Meta, error) {
	payload, err := c.get(ctx, "/teachers", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Teacher](payload)
}

// ListTeachersMinimal returns the reduced id/name list for selectors.
func (c *Client) ListTeachersMinimal(ctx context.Context) ([]TeacherRef, error) {
	payload, err := c.get(ctx, "/teachers/minimal", nil)
	if err != nil {
		return nil, err
	}
	refs, _, err := decodeList[TeacherRef](payload)
	return refs, err
}

// GetTeacher fetches one teacher's full record.
func (c *Client) GetTeacher(ctx context.Context, id string) (Teacher, error) {
	if err := requireID(id); err != nil {
		return Teacher{}, err
	}
	payload, err := c.get(ctx, "/teachers/"+id, nil)
	if err != nil {
		return Teacher{}, err
	}
	return decodeEntity[Teacher](payload)
}

// CreateTeacher registers a new teacher.
func (c *Client) CreateTeacher(ctx context.Context, params TeacherParams) (Teacher, error) {
	if err := checkParams(params); err != nil {
		return Teacher{}, err
	}
	payload, err := c.post(ctx, "/teachers", params)
	if err != nil {
		return Teacher{}, err
	}
	return decodeEntity[Teacher](payload)
}

// UpdateTeacher replaces a teacher's writable fields.
func (c *Client) UpdateTeacher(ctx context.Context, id string, params TeacherParams) (Teacher, error) {
	if err := requireID(id); err != nil {
		return Teacher{}, err
	}
	if err := checkParams(params); err != nil {
		return Teacher{}, err
	}
	payload, err := c.put(ctx, "/teachers/"+id, params)
	if err != nil {
		return Teacher{}, err
	}
	return decodeEntity[Teacher](payload)
}

// DeleteTeacher removes a teacher.
func (c *Client) DeleteTeacher(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/teachers/"+id)
}
