package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campuskit/campus-backend/internal/config"
	"github.com/campuskit/campus-backend/internal/database"
	"github.com/campuskit/campus-backend/internal/logger"
	"github.com/campuskit/campus-backend/internal/model"
	"github.com/campuskit/campus-backend/internal/repository"
	"github.com/campuskit/campus-backend/internal/service"
)

// Seeds one demo college with courses, timetables and students so the API is
// usable right after migrating. Safe to re-run: the college is looked up by
// name first.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	collegeRepo := repository.NewCollegeRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	timetableRepo := repository.NewTimetableRepository(pool)

	collegeService := service.NewCollegeService(collegeRepo, log)
	studentService := service.NewStudentService(studentRepo, log)
	courseService := service.NewCourseService(courseRepo, rdb, log)
	timetableService := service.NewTimetableService(timetableRepo, courseRepo, pool, rdb, cfg, log)

	fmt.Println("=== Seeding demo college ===")

	collegeName := "Meridian Institute of Technology"

	var collegeID string
	err = pool.QueryRow(ctx, "SELECT id FROM colleges WHERE name = $1", collegeName).Scan(&collegeID)
	if err != nil {
		if err == pgx.ErrNoRows {
			college, err := collegeService.Create(ctx, model.CreateCollegeRequest{Name: collegeName})
			if err != nil {
				log.Fatal().Err(err).Msg("Failed to create college")
			}
			collegeID = college.ID
			fmt.Printf("Created college with ID: %s\n", collegeID)
		} else {
			log.Fatal().Err(err).Msg("Failed to check existing college")
		}
	} else {
		fmt.Printf("Found existing college with ID: %s\n", collegeID)
		fmt.Println("Nothing to do")
		return
	}

	courses := []model.CreateCourseRequest{
		{Name: "Data Structures", CourseCode: "CS201", CollegeID: collegeID},
		{Name: "Operating Systems", CourseCode: "CS301", CollegeID: collegeID},
		{Name: "Linear Algebra", CourseCode: "MA102", CollegeID: collegeID},
		{Name: "Digital Electronics", CourseCode: "EC104", CollegeID: collegeID},
		{Name: "Astronomy Night Lab", CourseCode: "PH330", CollegeID: collegeID},
	}

	courseIDs := make([]string, 0, len(courses))
	for _, req := range courses {
		course, err := courseService.Create(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Str("course", req.Name).Msg("Failed to create course")
		}
		courseIDs = append(courseIDs, course.ID)
		fmt.Printf("Created course %s (%s)\n", course.Name, course.ID)
	}

	timetables := []model.CreateCourseTimetableRequest{
		{Day: "Monday", StartTime: "09:00", EndTime: "10:30", CourseID: courseIDs[0]},
		{Day: "Wednesday", StartTime: "09:00", EndTime: "10:30", CourseID: courseIDs[0]},
		{Day: "Monday", StartTime: "10:30", EndTime: "12:00", CourseID: courseIDs[1]},
		{Day: "Thursday", StartTime: "14:00", EndTime: "15:30", CourseID: courseIDs[1]},
		{Day: "Tuesday", StartTime: "11:00", EndTime: "12:30", CourseID: courseIDs[2]},
		{Day: "Friday", StartTime: "08:00", EndTime: "09:30", CourseID: courseIDs[3]},
		// Crosses midnight; stored as a split pair.
		{Day: "Friday", StartTime: "22:00", EndTime: "01:00", CourseID: courseIDs[4]},
	}

	for _, req := range timetables {
		entry, err := timetableService.Create(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Str("course_id", req.CourseID).Msg("Failed to create timetable entry")
		}
		fmt.Printf("Created timetable %s %s-%s (%s)\n", entry.Day, entry.StartTime, entry.EndTime, entry.ID)
	}

	names := []string{
		"Aarav Sharma", "Bianca Morales", "Chen Wei", "Daniela Rossi", "Elias Okafor",
		"Fatima Al-Sayed", "Gabriel Costa", "Hana Kobayashi", "Ivan Petrov", "Julia Novak",
		"Karim Haddad", "Lena Fischer", "Mateo Silva", "Nadia Rahman", "Oliver Brandt",
		"Priya Nair", "Quentin Dubois", "Rosa Jimenez", "Santiago Vargas", "Tara O'Brien",
	}

	for _, name := range names {
		student, err := studentService.Create(ctx, model.CreateStudentRequest{Name: name, CollegeID: collegeID})
		if err != nil {
			log.Fatal().Err(err).Str("student", name).Msg("Failed to create student")
		}
		fmt.Printf("Created student %s (%s)\n", student.Name, student.ID)
	}

	fmt.Println("=== Seed complete ===")
}
