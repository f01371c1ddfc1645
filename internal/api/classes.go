package api

import "context"

// ClassParams are the writable class fields.
type ClassParams struct {
	Name      string `json:"name" validate:"required"`
	Grade     string `json:"grade" validate:"required"`
	Section   string `json:"section"`
	TeacherID string `json:"teacherId"`
}

// ListClasses pages through classes.
func (c *Client) ListClasses(ctx context.Context, opts ListOptions) ([]Class, Meta, error) {
	payload, err := c.get(ctx, "/classes", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Class](payload)
}

// CreateClass adds a class.
func (c *Client) CreateClass(ctx context.Context, params ClassParams) (Class, error) {
	if err := checkParams(params); err != nil {
		return Class{}, err
	}
	payload, err := c.post(ctx, "/classes", params)
	if err != nil {
		return Class{}, err
	}
	return decodeEntity[Class](payload)
}

// UpdateClass replaces a class's writable fields.
func (c *Client) UpdateClass(ctx context.Context, id string, params ClassParams) (Class, error) {
	if err := requireID(id); err != nil {
		return Class{}, err
	}
	if err := checkParams(params); err != nil {
		return Class{}, err
	}
	payload, err := c.put(ctx, "/classes/"+id, params)
	if err != nil {
		return Class{}, err
	}
	return decodeEntity[Class](payload)
}

// DeleteClass removes a class.
func (c *Client) DeleteClass(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/classes/"+id)
}
