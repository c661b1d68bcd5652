package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mod756/timetableautomation/internal/csvio"
	"github.com/mod756/timetableautomation/internal/scheduler"
	"github.com/mod756/timetableautomation/pkg/model"
)

func main() {
	v := viper.New()
	v.SetConfigName("timetable")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TIMETABLE")
	v.AutomaticEnv()
	v.SetDefault("files.courses", "./res/courses.csv")
	v.SetDefault("files.electives", "./res/electives.csv")
	v.SetDefault("files.rooms", "./res/rooms.csv")
	v.SetDefault("files.export", "timetables.csv")
	v.SetDefault("files.workbook", "timetables.xlsx")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("engine.seed", 0)
	v.SetDefault("log.debug", false)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "read config: %v\n", err)
			os.Exit(1)
		}
	}

	logger := zap.Must(zap.NewProduction())
	if v.GetBool("log.debug") {
		logger = zap.Must(zap.NewDevelopment())
	}
	defer logger.Sync()

	cfg := engineConfiguration(v)
	delim := []rune(v.GetString("csv.delimiter"))[0]

	rooms, err := csvio.LoadRooms(v.GetString("files.rooms"), delim)
	if err != nil {
		logger.Fatal("load rooms", zap.Error(err))
	}
	faculty, err := csvio.LoadElectives(v.GetString("files.electives"), delim)
	if err != nil {
		logger.Fatal("load electives", zap.Error(err))
	}
	courses, err := csvio.LoadCourses(v.GetString("files.courses"), delim)
	if err != nil {
		logger.Fatal("load courses", zap.Error(err))
	}

	opts := []scheduler.Option{scheduler.WithLogger(logger)}
	if seed := v.GetInt64("engine.seed"); seed != 0 {
		opts = append(opts, scheduler.WithRand(rand.New(rand.NewSource(seed))))
	}

	start := time.Now()
	result := scheduler.New(cfg, rooms, faculty, opts...).Generate(courses)
	logger.Info("schedule generated",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("sections", len(result.Tables)),
		zap.Int("unplaced", len(result.Unplaced)))

	_, report := scheduler.Validate(courses, result, cfg)
	fmt.Print(report)

	if err := csvio.ExportTimetables(result, v.GetString("files.export")); err != nil {
		logger.Fatal("export csv", zap.Error(err))
	}
	if err := csvio.ExportWorkbook(result, v.GetString("files.workbook")); err != nil {
		logger.Fatal("export workbook", zap.Error(err))
	}
	csvio.PrintUnplaced(result.Unplaced)
}

// engineConfiguration overlays the default policy with any values from the
// config file or environment. Unset keys keep the defaults.
func engineConfiguration(v *viper.Viper) *scheduler.Configuration {
	cfg := scheduler.NewDefaultConfiguration()
	v.SetDefault("engine.days", cfg.Days)
	v.SetDefault("engine.dayStart", model.FormatClock(cfg.DayStart))
	v.SetDefault("engine.dayEnd", model.FormatClock(cfg.DayEnd))
	v.SetDefault("engine.slotMinutes", cfg.SlotDuration)
	v.SetDefault("engine.maxAttempts", cfg.MaxAttempts)

	cfg.Days = v.GetStringSlice("engine.days")
	cfg.SlotDuration = v.GetInt("engine.slotMinutes")
	cfg.MaxAttempts = v.GetInt("engine.maxAttempts")
	var err error
	if cfg.DayStart, err = model.ParseClock(v.GetString("engine.dayStart")); err != nil {
		fmt.Fprintf(os.Stderr, "engine.dayStart: %v\n", err)
		os.Exit(1)
	}
	if cfg.DayEnd, err = model.ParseClock(v.GetString("engine.dayEnd")); err != nil {
		fmt.Fprintf(os.Stderr, "engine.dayEnd: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
