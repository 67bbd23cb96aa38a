// internals/features/exams/reports/controller/report_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"examtrack_backend/internals/constants"
	studentModel "examtrack_backend/internals/features/academics/students/model"
	allocModel "examtrack_backend/internals/features/exams/allocations/model"
	attModel "examtrack_backend/internals/features/exams/attendance/model"
	roomModel "examtrack_backend/internals/features/exams/rooms/model"
	sessDto "examtrack_backend/internals/features/exams/sessions/dto"
	sessModel "examtrack_backend/internals/features/exams/sessions/model"
	profileModel "examtrack_backend/internals/features/users/profiles/model"
	helper "examtrack_backend/internals/helpers"

	"examtrack_backend/internals/features/exams/reports/service"
)

// Reports are computed from raw rows on every request; nothing is
// materialized, so a stats read never disagrees with the log.
type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

func (ctl *ReportController) loadSessionRows(db *gorm.DB, sessionIDs []uuid.UUID) ([]allocModel.CourseRoomAllocationModel, []attModel.AttendanceLogModel, error) {
	var allocs []allocModel.CourseRoomAllocationModel
	if err := db.Where("course_room_allocation_exam_session_id IN ?", sessionIDs).
		Find(&allocs).Error; err != nil {
		return nil, nil, err
	}
	if len(allocs) == 0 {
		return allocs, nil, nil
	}

	allocIDs := make([]uuid.UUID, 0, len(allocs))
	for i := range allocs {
		allocIDs = append(allocIDs, allocs[i].CourseRoomAllocationID)
	}
	var records []attModel.AttendanceLogModel
	if err := db.Where("attendance_log_allocation_id IN ?", allocIDs).
		Find(&records).Error; err != nil {
		return nil, nil, err
	}
	return allocs, records, nil
}

/* =========================================================
   SESSION STATS
   ========================================================= */

// GET /api/a/reports/sessions/:id
func (ctl *ReportController) SessionStats(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var sess sessModel.ExamSessionModel
	if err := db.First(&sess, "exam_session_id = ?", sessionID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Exam session not found")
		}
		return helper.WritePGError(c, err, "")
	}

	allocs, records, err := ctl.loadSessionRows(db, []uuid.UUID{sessionID})
	if err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonOK(c, "Session stats computed", fiber.Map{
		"session": sessDto.NewExamSessionResponse(&sess),
		"stats":   service.ComputeSessionStats(allocs, records),
	})
}

/* =========================================================
   DASHBOARD
   ========================================================= */

type sessionSummary struct {
	Session sessDto.ExamSessionResponse `json:"session"`
	Stats   service.SessionStats        `json:"stats"`
}

// GET /api/a/reports/dashboard?date=YYYY-MM-DD (default today)
func (ctl *ReportController) Dashboard(c *fiber.Ctx) error {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" || date == "today" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date filter, expected YYYY-MM-DD")
	}

	db := ctl.DB.WithContext(c.UserContext())

	var sessions []sessModel.ExamSessionModel
	if err := db.Where("exam_session_exam_date = ?", date).
		Order("exam_session_start_time ASC").
		Find(&sessions).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	summaries := make([]sessionSummary, 0, len(sessions))
	totals := service.SessionStats{}

	if len(sessions) > 0 {
		sessionIDs := make([]uuid.UUID, 0, len(sessions))
		for i := range sessions {
			sessionIDs = append(sessionIDs, sessions[i].ExamSessionID)
		}
		allocs, records, err := ctl.loadSessionRows(db, sessionIDs)
		if err != nil {
			return helper.WritePGError(c, err, "")
		}

		allocsBySession := map[uuid.UUID][]allocModel.CourseRoomAllocationModel{}
		for i := range allocs {
			sid := allocs[i].CourseRoomAllocationExamSessionID
			allocsBySession[sid] = append(allocsBySession[sid], allocs[i])
		}

		for i := range sessions {
			s := &sessions[i]
			stats := service.ComputeSessionStats(allocsBySession[s.ExamSessionID], records)
			summaries = append(summaries, sessionSummary{
				Session: sessDto.NewExamSessionResponse(s),
				Stats:   stats,
			})
			totals.Expected += stats.Expected
			totals.Present += stats.Present
			totals.Overrides += stats.Overrides
			totals.Absent += stats.Absent
		}
		totals.Rate = service.Rate(totals.Present, totals.Overrides, totals.Expected)
	}

	var studentCount, roomCount, invigilatorCount int64
	if err := db.Model(&studentModel.StudentModel{}).Count(&studentCount).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	if err := db.Model(&roomModel.ExamRoomModel{}).Count(&roomCount).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}
	if err := db.Model(&profileModel.ProfileModel{}).
		Where("profile_role = ?", constants.RoleInvigilator).
		Count(&invigilatorCount).Error; err != nil {
		return helper.WritePGError(c, err, "")
	}

	return helper.JsonOK(c, "Dashboard stats computed", fiber.Map{
		"date":     date,
		"sessions": summaries,
		"catalog": fiber.Map{
			"student_count":     studentCount,
			"room_count":        roomCount,
			"invigilator_count": invigilatorCount,
		},
		"totals": fiber.Map{
			"session_count": len(sessions),
			"expected":      totals.Expected,
			"present":       totals.Present,
			"overrides":     totals.Overrides,
			"absent":        totals.Absent,
			"rate":          totals.Rate,
		},
	})
}
