package api

// Entities mirror the server's JSON resources. IDs are server-assigned
// and opaque; createdAt fields are read-only and used for display only.

// Student is a learner registered in the school.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Gender        string `json:"gender"`
	ClassID       string `json:"classId"`
	ClassName     string `json:"className"`
	GuardianPhone string `json:"guardianPhone"`
	Address       string `json:"address"`
	CreatedAt     string `json:"createdAt"`
}

// Teacher is a staff member who teaches one or more subjects.
type Teacher struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Qualification string `json:"qualification"`
	CreatedAt     string `json:"createdAt"`
}

// TeacherRef is the reduced shape returned by /teachers/minimal,
// intended for selector lists.
type TeacherRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Class is a grade/section grouping of students.
type Class struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	Section   string `json:"section"`
	TeacherID string `json:"teacherId"`
	Students  int    `json:"studentCount"`
	CreatedAt string `json:"createdAt"`
}

// Subject is a course taught to a class.
type Subject struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Code      string `json:"code"`
	ClassID   string `json:"classId"`
	CreatedAt string `json:"createdAt"`
}

// AttendanceEntry is one student's status within an attendance record.
type AttendanceEntry struct {
	StudentID string `json:"studentId"`
	Status    string `json:"status"` // present, absent, late
}

// AttendanceRecord is a class roll call for one date.
type AttendanceRecord struct {
	ID        string            `json:"id"`
	ClassID   string            `json:"classId"`
	ClassName string            `json:"className"`
	Date      string            `json:"date"`
	Entries   []AttendanceEntry `json:"entries"`
	Present   int               `json:"presentCount"`
	Absent    int               `json:"absentCount"`
	CreatedAt string            `json:"createdAt"`
}

// Fee is a payable amount assigned to a student. Status is
// server-computed: pending, paid or overdue.
type Fee struct {
	ID          string  `json:"id"`
	StudentID   string  `json:"studentId"`
	StudentName string  `json:"studentName"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"dueDate"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// TimetableEntry is one scheduled period for a class.
type TimetableEntry struct {
	ID        string `json:"id"`
	ClassID   string `json:"classId"`
	SubjectID string `json:"subjectId"`
	TeacherID string `json:"teacherId"`
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Exam is a scheduled assessment for a class and subject.
type Exam struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SubjectID string `json:"subjectId"`
	ClassID   string `json:"classId"`
	Date      string `json:"date"`
	MaxMarks  int    `json:"maxMarks"`
	CreatedAt string `json:"createdAt"`
}

// GradeEntry is one student's result for an exam.
type GradeEntry struct {
	StudentID string  `json:"studentId"`
	Marks     float64 `json:"marks"`
}

// Assignment links a teacher to a subject within a class.
type Assignment struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacherId"`
	TeacherName string `json:"teacherName"`
	SubjectID   string `json:"subjectId"`
	ClassID     string `json:"classId"`
	CreatedAt   string `json:"createdAt"`
}

// Principal is the authenticated user as reported by /me.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
