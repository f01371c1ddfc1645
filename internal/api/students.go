package api

import (
	"context"
	"fmt"
)

// StudentParams are the writable student fields.
type StudentParams struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Gender        string `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassID       string `json:"classId"`
	GuardianPhone string `json:"guardianPhone"`
	Address       string `json:"address"`
}

// ListStudents pages through students.
func (c *Client) ListStudents(ctx context.Context, opts ListOptions) ([]Student, Meta, error) {
	payload, err := c.get(ctx, "/students", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Student](payload)
}

// CreateStudent registers a new student.
func (c *Client) CreateStudent(ctx context.Context, params StudentParams) (Student, error) {
	if err := checkParams(params); err != nil {
		return Student{}, err
	}
	payload, err := c.post(ctx, "/students", params)
	if err != nil {
		return Student{}, err
	}
	return decodeEntity[Student](payload)
}

// UpdateStudent replaces a student's writable fields.
func (c *Client) UpdateStudent(ctx context.Context, id string, params StudentParams) (Student, error) {
	if err := requireID(id); err != nil {
		return Student{}, err
	}
	if err := checkParams(params); err != nil {
		return Student{}, err
	}
	payload, err := c.put(ctx, "/students/"+id, params)
	if err != nil {
		return Student{}, err
	}
	return decodeEntity[Student](payload)
}

// DeleteStudent removes a student.
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/students/"+id)
}

func requireID(id string) error {
	if id == "" {
		return fmt.Errorf("id required")
	}
	return nil
}
