package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// recordingServer captures the last request line so route tests stay
// table-shaped.
type recordedRequest struct {
	method string
	path   string
	body   []byte
}

func recordingClient(t *testing.T, response string) (*Client, *recordedRequest) {
	t.Helper()
	last := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.method = r.Method
		last.path = r.URL.Path
		var buf [4096]byte
		n, _ := r.Body.Read(buf[:])
		last.body = append([]byte(nil), buf[:n]...)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, 5*time.Second)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client, last
}

func TestRoutes(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		response   string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
	}{
		{
			name:     "update student",
			response: `{"id":"s1"}`,
			call: func(c *Client) error {
				_, err := c.UpdateStudent(ctx, "s1", StudentParams{Name: "Ann", Email: "ann@school.test"})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/students/s1",
		},
		{
			name:       "delete student",
			response:   `{}`,
			call:       func(c *Client) error { return c.DeleteStudent(ctx, "s1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/students/s1",
		},
		{
			name:     "teachers minimal",
			response: `{"data":[{"id":"t1","name":"Hale"}]}`,
			call: func(c *Client) error {
				_, err := c.ListTeachersMinimal(ctx)
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/teachers/minimal",
		},
		{
			name:     "get teacher",
			response: `{"data":{"id":"t1"}}`,
			call: func(c *Client) error {
				_, err := c.GetTeacher(ctx, "t1")
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/teachers/t1",
		},
		{
			name:     "mark attendance",
			response: `{"id":"a1"}`,
			call: func(c *Client) error {
				_, err := c.MarkAttendance(ctx, MarkAttendanceParams{
					ClassID: "c1",
					Date:    "2026-08-30",
					Entries: []AttendanceEntry{{StudentID: "s1", Status: "present"}},
				})
				return err
			},
			wantMethod: http.MethodPost,
			wantPath:   "/attendance/mark",
		},
		{
			name:     "amend attendance entry",
			response: `{"id":"a1"}`,
			call: func(c *Client) error {
				_, err := c.UpdateAttendanceEntry(ctx, "a1", RecordEntryParams{StudentID: "s1", Status: "late"})
				return err
			},
			wantMethod: http.MethodPatch,
			wantPath:   "/attendance/a1/record",
		},
		{
			name:     "class timetable",
			response: `{"data":[]}`,
			call: func(c *Client) error {
				_, _, err := c.ListTimetable(ctx, "c1", ListOptions{})
				return err
			},
			wantMethod: http.MethodGet,
			wantPath:   "/timetable/class/c1",
		},
		{
			name:     "submit grades",
			response: `{}`,
			call: func(c *Client) error {
				return c.SubmitGrades(ctx, "e1", GradesParams{
					Grades: []GradeEntry{{StudentID: "s1", Marks: 72}},
				})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/exams/e1/grades",
		},
		{
			name:       "delete assignment",
			response:   `{}`,
			call:       func(c *Client) error { return c.DeleteAssignment(ctx, "g1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/assignments/g1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client, last := recordingClient(t, tc.response)
			if err := tc.call(client); err != nil {
				t.Fatalf("call: %v", err)
			}
			if last.method != tc.wantMethod || last.path != tc.wantPath {
				t.Fatalf("request = %s %s, want %s %s", last.method, last.path, tc.wantMethod, tc.wantPath)
			}
		})
	}
}

func TestParamValidation(t *testing.T) {
	ctx := context.Background()
	client, last := recordingClient(t, `{}`)

	cases := []struct {
		name string
		call func() error
	}{
		{"student without name", func() error {
			_, err := client.CreateStudent(ctx, StudentParams{Email: "x@school.test"})
			return err
		}},
		{"fee with zero amount", func() error {
			_, err := client.CreateFee(ctx, FeeParams{StudentID: "s1", Amount: 0, DueDate: "2026-09-01"})
			return err
		}},
		{"fee with bad status", func() error {
			_, err := client.CreateFee(ctx, FeeParams{StudentID: "s1", Amount: 10, DueDate: "2026-09-01", Status: "overdue"})
			return err
		}},
		{"attendance with no entries", func() error {
			_, err := client.MarkAttendance(ctx, MarkAttendanceParams{ClassID: "c1", Date: "2026-08-30"})
			return err
		}},
		{"timetable with bad day", func() error {
			_, err := client.CreateTimetableEntry(ctx, TimetableParams{
				ClassID: "c1", SubjectID: "sub1", TeacherID: "t1",
				Day: "someday", StartTime: "09:00", EndTime: "10:00",
			})
			return err
		}},
		{"exam with bad date", func() error {
			_, err := client.CreateExam(ctx, ExamParams{
				Name: "Midterm", SubjectID: "sub1", ClassID: "c1",
				Date: "30/08/2026", MaxMarks: 100,
			})
			return err
		}},
		{"update without id", func() error {
			_, err := client.UpdateFee(ctx, "", FeeParams{StudentID: "s1", Amount: 10, DueDate: "2026-09-01"})
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last.method = ""
			if err := tc.call(); err == nil {
				t.Fatal("invalid params accepted")
			}
			if last.method != "" {
				t.Fatal("invalid params still reached the server")
			}
		})
	}
}

func TestValidationMessageIsFormReady(t *testing.T) {
	client, _ := recordingClient(t, `{}`)

	_, err := client.CreateTeacher(context.Background(), TeacherParams{Name: "Hale", Email: "not-an-email"})
	if err == nil {
		t.Fatal("CreateTeacher accepted a malformed email")
	}
	if got := err.Error(); got != "email must be a valid email address" {
		t.Fatalf("err = %q, want the inline field message", got)
	}
}

func TestMarkAttendanceBody(t *testing.T) {
	client, last := recordingClient(t, `{"id":"a1"}`)

	params := MarkAttendanceParams{
		ClassID: "c1",
		Date:    "2026-08-30",
		Entries: []AttendanceEntry{
			{StudentID: "s1", Status: "present"},
			{StudentID: "s2", Status: "absent"},
		},
	}
	if _, err := client.MarkAttendance(context.Background(), params); err != nil {
		t.Fatalf("MarkAttendance: %v", err)
	}

	var sent MarkAttendanceParams
	if err := json.Unmarshal(last.body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if len(sent.Entries) != 2 || sent.Entries[1].Status != "absent" {
		t.Fatalf("sent entries = %+v, want both roll-call entries", sent.Entries)
	}
}
