package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/config"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/domain"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/repository"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/schedule"
	"github.com/sysu-ecnc-dev/shift-scheduler/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var name string

	flag.IntVar(&op, "op", 0, "要执行的操作 (1: 插入演示快照, 2: 插入随机员工快照)")
	flag.IntVar(&n, "n", 20, "随机快照中的员工数量")
	flag.StringVar(&name, "name", "", "快照名称（留空则自动生成）")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// 创建数据库连接池
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("无法创建数据库连接池", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open 只是创建数据库连接池对象，并不会立即连接到数据库，因此需要显式地 ping 一下
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("无法连接到数据库", "error", err)
		return
	}

	// 创建 repository
	repo := repository.NewRepository(cfg, dbpool)

	// 执行操作
	switch op {
	case 0:
		slog.Error("未指定操作")
	case 1:
		if name == "" {
			name = "演示数据"
		}
		insertSnapshot(repo, name, seed.DemoPayload())
	case 2:
		if n <= 0 {
			slog.Error("请输入合法的员工数量")
			return
		}
		if name == "" {
			name = "随机数据"
		}
		insertSnapshot(repo, name, seed.RandomPayload(n, cfg.Schedule.PlanningDays))
	default:
		slog.Error("指定的操作非法")
	}
}

// insertSnapshot 先让引擎校验一遍载荷，再把快照写入数据库
func insertSnapshot(repo *repository.Repository, name string, payload *domain.SchedulePayload) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("无法序列化载荷", slog.String("error", err.Error()))
		return
	}

	roster := schedule.NewRoster()
	report, err := roster.MergeImport(data)
	if err != nil {
		slog.Error("载荷未通过校验", slog.String("error", err.Error()))
		return
	}

	snapshot := &domain.ScheduleSnapshot{
		Name:    name,
		Payload: roster.BuildPayload(),
	}

	if err := repo.CreateSnapshot(snapshot); err != nil {
		slog.Error("无法插入快照", slog.String("error", err.Error()))
		return
	}

	slog.Info("插入快照成功",
		slog.Int64("id", snapshot.ID),
		slog.String("name", snapshot.Name),
		slog.Int("employees", report.EmployeesImported),
	)
}
