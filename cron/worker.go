package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"asclepius/config"
	consultationRepo "asclepius/database/repository/consultation"
	"asclepius/models"
	"asclepius/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// TypeFollowUpSweep finds due follow-ups and fans out reminder tasks.
	TypeFollowUpSweep = "followup:sweep"
	// TypeFollowUpRemind parks one reminder payload for the doctor's
	// dashboard. No message ever leaves the system from here.
	TypeFollowUpRemind = "followup:remind"

	sweepInterval   = 24 * time.Hour
	reminderListTTL = 48 * time.Hour
)

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// InitReminderWorker starts the asynq worker and enqueues the first daily
// sweep. Each sweep re-enqueues the next one.
func InitReminderWorker(repo consultationRepo.ConsultationRepository) {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	client := asynq.NewClient(redisOpts())

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeFollowUpSweep, handleSweepTask(repo, client))
	mux.HandleFunc(TypeFollowUpRemind, handleReminderTask())

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("Reminder worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("Reminder worker gave up after max attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	if err := enqueueSweep(client, 0); err != nil {
		logger.Error("Failed to enqueue initial follow-up sweep", zap.Error(err))
	}
}

func enqueueSweep(client *asynq.Client, delay time.Duration) error {
	task := asynq.NewTask(TypeFollowUpSweep, nil)
	opts := []asynq.Option{asynq.Queue("default")}
	if delay > 0 {
		opts = append(opts, asynq.ProcessIn(delay))
	}
	if _, err := client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue follow-up sweep: %w", err)
	}
	return nil
}

// handleSweepTask scans for due, unnotified follow-ups and fans a
// reminder task out per consultation, then schedules the next sweep.
func handleSweepTask(repo consultationRepo.ConsultationRepository, client *asynq.Client) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		logger := utils.GetLogger()
		today := utils.Today()

		due, err := repo.GetDueFollowUps(today)
		if err != nil {
			logger.Error("Follow-up sweep query failed", zap.Error(err))
			return err
		}
		logger.Info("Follow-up sweep", zap.String("date", today), zap.Int("due", len(due)))

		for _, cons := range due {
			payload, err := json.Marshal(models.ReminderPayload{
				ConsultationID: cons.ID,
				DoctorID:       cons.DoctorID,
				PatientID:      cons.PatientID,
				FollowUpDate:   cons.FollowUpDate,
			})
			if err != nil {
				logger.Error("Failed to marshal reminder payload",
					zap.String("consultationID", cons.ID), zap.Error(err))
				continue
			}
			if _, err := client.Enqueue(asynq.NewTask(TypeFollowUpRemind, payload)); err != nil {
				logger.Error("Failed to enqueue reminder",
					zap.String("consultationID", cons.ID), zap.Error(err))
			}
		}

		if err := enqueueSweep(client, sweepInterval); err != nil {
			logger.Error("Failed to schedule next sweep", zap.Error(err))
		}
		return nil
	}
}

// handleReminderTask parks the payload in the cache under the doctor's
// reminder list so the next dashboard load can surface it.
func handleReminderTask() asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid reminder payload", zap.Error(err))
			return err
		}

		cache := utils.GetCacheClient()
		key := "reminders:" + p.DoctorID
		if err := cache.RPush(ctx, key, task.Payload()).Err(); err != nil {
			logger.Error("Failed to park reminder",
				zap.String("consultationID", p.ConsultationID), zap.Error(err))
			return err
		}
		if err := cache.Expire(ctx, key, reminderListTTL).Err(); err != nil {
			logger.Warn("Failed to set reminder list TTL", zap.Error(err))
		}

		logger.Info("Parked follow-up reminder",
			zap.String("doctorID", p.DoctorID),
			zap.String("consultationID", p.ConsultationID),
			zap.String("followUpDate", p.FollowUpDate))
		return nil
	}
}
