package echoapi

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/darasa/core/batch"
	"github.com/trezcool/darasa/core/enrollment"
)

func Test_enrollmentApi_create(t *testing.T) {
	ta := initApp(t)
	stuToken := getStudentToken(t, "stu1")
	otherToken := getStudentToken(t, "stu2")
	adminToken := getAdminToken(t)

	math := createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math Morning", Days: []string{"Monday", "Wednesday"}, ClassTime: "10:00 AM - 11:00 AM"})
	phys := createBatch(t, ta, batch.NewBatch{CourseID: "crs2", Name: "Physics", Days: []string{"Wednesday"}, ClassTime: "10:30 AM - 11:30 AM"})
	chem := createBatch(t, ta, batch.NewBatch{CourseID: "crs3", Name: "Chemistry", Days: []string{"Friday"}, ClassTime: "14:00 - 15:00"})

	tests := []httpTest{
		{
			name:     "no token fails",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: math.ID}),
			wantCode: http.StatusUnauthorized,
			wantData: marchallObj(t, errMissingToken),
		},
		{
			name:     "missing batch_id fails",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1"}),
			token:    stuToken,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"batch_id": "this field is required"}),
		},
		{
			name:     "enrolling another student fails",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: math.ID}),
			token:    otherToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{
			name:     "self enroll ok",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: math.ID}),
			token:    stuToken,
			wantCode: http.StatusCreated,
		},
		{
			name:     "conflicting batch fails",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: phys.ID}),
			token:    stuToken,
			wantCode: http.StatusBadRequest,
			wantData: marchallObj(t, map[string]string{"batch_id": `schedule conflicts with batch "Math Morning"`}),
		},
		{
			name:     "admin enrolls anyone ok",
			body:     marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: chem.ID}),
			token:    adminToken,
			wantCode: http.StatusCreated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodPost, "/v1/enrollments", tt.token, tt.body)
			ta.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusCreated {
				var enrol enrollment.Enrollment
				if err := json.Unmarshal(rec.Body.Bytes(), &enrol); err != nil {
					t.Fatalf("failed to unmarshal enrollment: %v", err)
				}
				assert.NotEmpty(t, enrol.ID)
				assert.Equal(t, "stu1", enrol.StudentID)
			}
		})
	}
}

func Test_enrollmentApi_createBulk(t *testing.T) {
	ta := initApp(t)
	stuToken := getStudentToken(t, "stu1")

	math := createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math", Days: []string{"Monday"}, ClassTime: "10:00 - 11:00"})
	phys := createBatch(t, ta, batch.NewBatch{CourseID: "crs2", Name: "Physics", Days: []string{"Monday"}, ClassTime: "10:30 - 11:30"})
	chem := createBatch(t, ta, batch.NewBatch{CourseID: "crs3", Name: "Chemistry", Days: []string{"Friday"}, ClassTime: "14:00 - 15:00"})

	body := marchallObj(t, enrollment.BulkEnrollment{StudentID: "stu1", BatchIDs: []string{math.ID, phys.ID, chem.ID}})
	req, rec := newAuthRequest(http.MethodPost, "/v1/enrollments/bulk", stuToken, body)
	ta.app.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res enrollment.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	if len(res.Enrolled) != 2 {
		t.Errorf("len(Enrolled) = %v; want 2", len(res.Enrolled))
	}
	if assert.Len(t, res.Skipped, 1) {
		assert.Equal(t, phys.ID, res.Skipped[0].Batch.ID)
		assert.Equal(t, `schedule conflicts with batch "Math"`, res.Skipped[0].Reason)
	}
}

func Test_enrollmentApi_createForCourse(t *testing.T) {
	ta := initApp(t)
	stuToken := getStudentToken(t, "stu1")

	createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math A", Days: []string{"Monday"}, ClassTime: "10:00 - 11:00"})
	createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math B", Days: []string{"Monday"}, ClassTime: "18:00 - 19:00"})

	// completed batches are not enrolled into
	done := createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math old", Days: []string{"Tuesday"}, ClassTime: "10:00 - 11:00"})
	if _, err := ta.batchSvc.Update(context.Background(), done.ID, batch.UpdateBatch{
		Name: done.Name, Days: done.Days, ClassTime: done.ClassTime, Status: "completed",
	}); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	body := marchallObj(t, enrollment.CourseEnrollment{StudentID: "stu1", CourseID: "crs1"})
	httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments/course", stuToken, body)
	ta.app.ServeHTTP(rec, httpReq)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed! code = %v; wantCode %v; body %v", rec.Code, http.StatusOK, rec.Body.String())
	}

	var res enrollment.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	if len(res.Enrolled) != 2 {
		t.Errorf("len(Enrolled) = %v; want 2 (completed batch excluded)", len(res.Enrolled))
	}
	for _, enrol := range res.Enrolled {
		if enrol.BatchID == done.ID {
			t.Errorf("enrolled into completed batch %v", done.ID)
		}
	}
}

func Test_enrollmentApi_checkConflict(t *testing.T) {
	ta := initApp(t)
	stuToken := getStudentToken(t, "stu1")

	// existing enrollment wraps midnight
	late := createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Night Lab", Days: []string{"Friday"}, ClassTime: "23:00 - 01:00"})
	early := createBatch(t, ta, batch.NewBatch{CourseID: "crs2", Name: "Early Bird", Days: []string{"Friday"}, ClassTime: "00:30 - 02:00"})
	free := createBatch(t, ta, batch.NewBatch{CourseID: "crs3", Name: "Free Slot", Days: []string{"Sunday"}, ClassTime: "08:00 - 09:00"})

	enrolBody := marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: late.ID})
	httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments", stuToken, enrolBody)
	ta.app.ServeHTTP(rec, httpReq)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup enrollment failed! code = %v; body %v", rec.Code, rec.Body.String())
	}

	t.Run("unknown batch fails", func(t *testing.T) {
		body := marchallObj(t, ConflictCheckRequest{StudentID: "stu1", BatchID: "nope"})
		httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments/conflict-check", stuToken, body)
		ta.app.ServeHTTP(rec, httpReq)
		checkCodeAndData(t, httpTest{wantCode: http.StatusNotFound, wantData: marchallObj(t, httpErr{Error: "not found"})}, rec)
	})

	t.Run("midnight wrap conflict reported", func(t *testing.T) {
		body := marchallObj(t, ConflictCheckRequest{StudentID: "stu1", BatchID: early.ID})
		httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments/conflict-check", stuToken, body)
		ta.app.ServeHTTP(rec, httpReq)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var res ConflictCheckResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if assert.NotNil(t, res.Conflict) {
			assert.Equal(t, late.ID, res.Conflict.Batch.ID)
			assert.Equal(t, "Night Lab", res.Conflict.Batch.Name)
			assert.Equal(t, "Friday", res.Conflict.Days)
			assert.Equal(t, "23:00 - 01:00", res.Conflict.Times)
		}
	})

	t.Run("no conflict comes back nil", func(t *testing.T) {
		body := marchallObj(t, ConflictCheckRequest{StudentID: "stu1", BatchID: free.ID})
		httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments/conflict-check", stuToken, body)
		ta.app.ServeHTTP(rec, httpReq)
		if rec.Code != http.StatusOK {
			t.Fatalf("failed! code = %v; body %v", rec.Code, rec.Body.String())
		}
		var res ConflictCheckResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		assert.Nil(t, res.Conflict)
	})
}

func Test_enrollmentApi_queryStudent(t *testing.T) {
	ta := initApp(t)
	stuToken := getStudentToken(t, "stu1")
	otherToken := getStudentToken(t, "stu2")
	adminToken := getAdminToken(t)

	math := createBatch(t, ta, batch.NewBatch{CourseID: "crs1", Name: "Math", Days: []string{"Monday"}, ClassTime: "10:00 - 11:00"})
	body := marchallObj(t, enrollment.NewEnrollment{StudentID: "stu1", BatchID: math.ID})
	httpReq, rec := newAuthRequest(http.MethodPost, "/v1/enrollments", stuToken, body)
	ta.app.ServeHTTP(rec, httpReq)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup enrollment failed! code = %v; body %v", rec.Code, rec.Body.String())
	}

	tests := []httpTest{
		{
			name:     "another student fails",
			token:    otherToken,
			wantCode: http.StatusForbidden,
			wantData: marchallObj(t, httpErr{Error: "permission denied"}),
		},
		{name: "self ok", token: stuToken, wantCode: http.StatusOK},
		{name: "admin ok", token: adminToken, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newAuthRequest(http.MethodGet, "/v1/students/stu1/enrollments", tt.token)
			ta.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)

			if tt.wantCode == http.StatusOK {
				var enrols []enrollment.Enrollment
				if err := json.Unmarshal(rec.Body.Bytes(), &enrols); err != nil {
					t.Fatalf("failed to unmarshal enrollments: %v", err)
				}
				if assert.Len(t, enrols, 1) {
					assert.Equal(t, math.ID, enrols[0].BatchID)
				}
			}
		})
	}
}
