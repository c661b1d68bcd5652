package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mod756/timetableautomation/internal/csvio"
	"github.com/mod756/timetableautomation/internal/scheduler"
)

type handler struct {
	logger *zap.Logger
}

func (h *handler) listTimetables(ctx *gin.Context) {
	files, err := os.ReadDir("db/generated/")
	if err != nil {
		ctx.Status(http.StatusInternalServerError)
		return
	}

	var allIDs []string = []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(file.Name(), "-timetable.csv")
		if ok {
			allIDs = append(allIDs, id)
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"timetableIds": allIDs,
	})
}

func (h *handler) getTimetable(ctx *gin.Context) {
	id := ctx.Param("id")
	content, err := os.ReadFile("db/generated/" + id + "-timetable.csv")
	if err != nil {
		ctx.Status(http.StatusNotFound)
		return
	}
	report, _ := os.ReadFile("db/generated/" + id + "-report.txt")

	ctx.JSON(http.StatusOK, gin.H{
		"data":   string(content),
		"report": string(report),
	})
}

func (h *handler) generateTimetable(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.String(http.StatusBadRequest, err.Error())
		return
	}
	if len(form.File["courses"]) == 0 || len(form.File["electives"]) == 0 || len(form.File["rooms"]) == 0 {
		ctx.Status(http.StatusBadRequest)
		return
	}

	coursesFile := form.File["courses"][0]
	electivesFile := form.File["electives"][0]
	roomsFile := form.File["rooms"][0]
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	coursesPath := "db/" + timestamp + coursesFile.Filename
	electivesPath := "db/" + timestamp + electivesFile.Filename
	roomsPath := "db/" + timestamp + roomsFile.Filename
	ctx.SaveUploadedFile(coursesFile, coursesPath)
	ctx.SaveUploadedFile(electivesFile, electivesPath)
	ctx.SaveUploadedFile(roomsFile, roomsPath)

	if err := h.createAndExport(coursesPath, electivesPath, roomsPath, timestamp); err != nil {
		h.logger.Error("timetable generation failed", zap.Error(err))
		ctx.String(http.StatusUnprocessableEntity, err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id": timestamp,
	})
}

func (h *handler) createAndExport(coursesPath, electivesPath, roomsPath, id string) error {
	rooms, err := csvio.LoadRooms(roomsPath, ',')
	if err != nil {
		return err
	}
	faculty, err := csvio.LoadElectives(electivesPath, ',')
	if err != nil {
		return err
	}
	courses, err := csvio.LoadCourses(coursesPath, ',')
	if err != nil {
		return err
	}

	cfg := scheduler.NewDefaultConfiguration()
	result := scheduler.New(cfg, rooms, faculty, scheduler.WithLogger(h.logger)).Generate(courses)
	_, report := scheduler.Validate(courses, result, cfg)

	if err := csvio.ExportTimetables(result, "db/generated/"+id+"-timetable.csv"); err != nil {
		return err
	}
	return os.WriteFile("db/generated/"+id+"-report.txt", []byte(report), 0o644)
}
