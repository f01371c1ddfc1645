package api

import "context"

// SubjectParams are the writable subject fields.
type SubjectParams struct {
	Name    string `json:"name" validate:"required"`
	Code    string `json:"code" validate:"required"`
	ClassID string `json:"classId"`
}

// ListSubjects pages through subjects.
func (c *Client) ListSubjects(ctx context.Context, opts ListOptions) ([]Subject, Meta, error) {
	payload, err := c.get(ctx, "/subjects", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Subject](payload)
}

// CreateSubject adds a subject.
func (c *Client) CreateSubject(ctx context.Context, params SubjectParams) (Subject, error) {
	if err := checkParams(params); err != nil {
		return Subject{}, err
	}
	payload, err := c.post(ctx, "/subjects", params)
	if err != nil {
		return Subject{}, err
	}
	return decodeEntity[Subject](payload)
}

// UpdateSubject replaces a subject's writable fields.
func (c *Client) UpdateSubject(ctx context.Context, id string, params SubjectParams) (Subject, error) {
	if err := requireID(id); err != nil {
		return Subject{}, err
	}
	if err := checkParams(params); err != nil {
		return Subject{}, err
	}
	payload, err := c.put(ctx, "/subjects/"+id, params)
	if err != nil {
		return Subject{}, err
	}
	return decodeEntity[Subject](payload)
}

// DeleteSubject removes a subject.
func (c *Client) DeleteSubject(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/subjects/"+id)
}
