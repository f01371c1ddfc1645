package api

import "context"

// AssignmentParams link a teacher to a subject within a class.
type AssignmentParams struct {
	TeacherID string `json:"teacherId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	ClassID   string `json:"classId" validate:"required"`
}

// ListAssignments pages through teacher-subject-class assignments.
// Filter by teacher via opts.Filters["teacherId"].
func (c *Client) ListAssignments(ctx context.Context, opts ListOptions) ([]Assignment, Meta, error) {
	payload, err := c.get(ctx, "/assignments", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Assignment](payload)
}

// CreateAssignment links a teacher to a subject and class.
func (c *Client) CreateAssignment(ctx context.Context, params AssignmentParams) (Assignment, error) {
	if err := checkParams(params); err != nil {
		return Assignment{}, err
	}
	payload, err := c.post(ctx, "/assignments", params)
	if err != nil {
		return Assignment{}, err
	}
	return decodeEntity[Assignment](payload)
}

// DeleteAssignment removes an assignment.
func (c *Client) DeleteAssignment(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	return c.delete(ctx, "/assignments/"+id)
}
