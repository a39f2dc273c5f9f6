package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/services"
)

// MaintenanceWorker выполняет периодические фоновые задачи:
// чистку просроченных токенов и закрытие вакансий с истекшим дедлайном.
type MaintenanceWorker struct {
	db           *gorm.DB
	tokenService services.TokenService
}

func NewMaintenanceWorker(db *gorm.DB, tokenService services.TokenService) *MaintenanceWorker {
	return &MaintenanceWorker{
		db:           db,
		tokenService: tokenService,
	}
}

// Start запускает фоновые задачи
func (w *MaintenanceWorker) Start(ctx context.Context) {
	go w.cleanupExpiredTokens(ctx)
	go w.closeExpiredJobs(ctx)
}

// cleanupExpiredTokens удаляет просроченные refresh-токены
// и отработавшие одноразовые токены
func (w *MaintenanceWorker) cleanupExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(6 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			if err := w.tokenService.CleanupExpired(); err != nil {
				logger.WithError(err).Error("Failed to cleanup expired refresh tokens")
			}

			result := w.db.Exec(`
				DELETE FROM verification_tokens
				WHERE used_at IS NOT NULL OR expires_at < NOW()
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("Failed to cleanup verification tokens")
			} else if result.RowsAffected > 0 {
				logger.Info("Verification tokens removed", "count", result.RowsAffected)
			}
		}
	}
}

// closeExpiredJobs закрывает открытые вакансии с прошедшим дедлайном
func (w *MaintenanceWorker) closeExpiredJobs(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Job deadline worker stopped")
			return
		case <-ticker.C:
			result := w.db.Exec(`
				UPDATE jobs
				SET status = 'CLOSED', updated_at = NOW()
				WHERE status = 'OPEN'
				AND deadline IS NOT NULL
				AND deadline < NOW()
			`)
			if result.Error != nil {
				logger.WithError(result.Error).Error("Failed to close expired jobs")
			} else if result.RowsAffected > 0 {
				logger.Info("Jobs closed by deadline", "count", result.RowsAffected)
			}
		}
	}
}
