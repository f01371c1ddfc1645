package api

import "context"

// ExamParams are the writable exam fields. Exams cannot be edited or
// deleted once created; grades are appended separately.
type ExamParams struct {
	Name      string `json:"name" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	ClassID   string `json:"classId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	MaxMarks  int    `json:"maxMarks" validate:"required,gt=0"`
}

// GradesParams record results for an exam.
type GradesParams struct {
	Grades []GradeEntry `json:"grades" validate:"required,min=1,dive"`
}

// ListExams pages through exams.
func (c *Client) ListExams(ctx context.Context, opts ListOptions) ([]Exam, Meta, error) {
	payload, err := c.get(ctx, "/exams", opts.values())
	if err != nil {
		return nil, Meta{}, err
	}
	return decodeList[Exam](payload)
}

// CreateExam schedules an exam.
func (c *Client) CreateExam(ctx context.Context, params ExamParams) (Exam, error) {
	if err := checkParams(params); err != nil {
		return Exam{}, err
	}
	payload, err := c.post(ctx, "/exams", params)
	if err != nil {
		return Exam{}, err
	}
	return decodeEntity[Exam](payload)
}

// SubmitGrades records per-student results for an exam.
func (c *Client) SubmitGrades(ctx context.Context, examID string, params GradesParams) error {
	if err := requireID(examID); err != nil {
		return err
	}
	if err := checkParams(params); err != nil {
		return err
	}
	_, err := c.post(ctx, "/exams/"+examID+"/grades", params)
	return err
}
