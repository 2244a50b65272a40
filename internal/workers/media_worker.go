package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"contest_backend/internal/imageprocessor"
	"contest_backend/internal/logger"
	"contest_backend/internal/metrics"
	"contest_backend/internal/models"
	"contest_backend/internal/repositories"
	"contest_backend/internal/storage"

	"gorm.io/gorm"
)

const workerName = "media_worker"

// MediaWorker доводит загруженные медиа из PROCESSING до COMPLETED/FAILED:
// строит превью для изображений и сохраняет его рядом с оригиналом.
type MediaWorker struct {
	db        *gorm.DB
	repo      repositories.MediaRepository
	storage   storage.Storage
	processor *imageprocessor.Processor
	metrics   *metrics.Metrics

	queue         chan string
	sweepInterval time.Duration
	stuckAfter    time.Duration
	wg            sync.WaitGroup
}

type MediaWorkerOption func(*MediaWorker)

func WithSweepInterval(d time.Duration) MediaWorkerOption {
	return func(w *MediaWorker) { w.sweepInterval = d }
}

func WithStuckAfter(d time.Duration) MediaWorkerOption {
	return func(w *MediaWorker) { w.stuckAfter = d }
}

func WithMetrics(m *metrics.Metrics) MediaWorkerOption {
	return func(w *MediaWorker) { w.metrics = m }
}

func NewMediaWorker(db *gorm.DB, repo repositories.MediaRepository, store storage.Storage, processor *imageprocessor.Processor, queueSize int, opts ...MediaWorkerOption) *MediaWorker {
	if queueSize <= 0 {
		queueSize = 100
	}
	w := &MediaWorker{
		db:            db,
		repo:          repo,
		storage:       store,
		processor:     processor,
		queue:         make(chan string, queueSize),
		sweepInterval: time.Minute,
		stuckAfter:    5 * time.Minute,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Enqueue не блокирует запрос: при переполненной очереди медиа
// останется в PROCESSING и будет подобрано периодическим проходом.
func (w *MediaWorker) Enqueue(mediaID string) bool {
	select {
	case w.queue <- mediaID:
		w.reportQueue()
		return true
	default:
		logger.Warn("media queue is full, deferring to sweep", "media_id", mediaID)
		return false
	}
}

// Start запускает обработку очереди и периодический проход по зависшим медиа
func (w *MediaWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Wait блокируется до остановки воркера (после отмены ctx)
func (w *MediaWorker) Wait() {
	w.wg.Wait()
}

func (w *MediaWorker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	logger.Info("media worker started", "sweep_interval", w.sweepInterval.String())

	for {
		select {
		case <-ctx.Done():
			logger.Info("media worker stopped")
			return
		case id := <-w.queue:
			w.reportQueue()
			_ = w.Process(ctx, id)
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *MediaWorker) sweep(ctx context.Context) {
	stuck, err := w.repo.FindStuck(w.db.WithContext(ctx), time.Now().Add(-w.stuckAfter), 50)
	if err != nil {
		logger.WorkerLog(workerName, "sweep", err)
		return
	}
	for _, m := range stuck {
		if ctx.Err() != nil {
			return
		}
		_ = w.Process(ctx, m.ID)
	}
}

// Process обрабатывает одно медиа. Повторная обработка уже завершенного - no-op.
func (w *MediaWorker) Process(ctx context.Context, mediaID string) error {
	db := w.db.WithContext(ctx)

	media, err := w.repo.FindByID(db, mediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			// удалили, пока лежало в очереди
			return nil
		}
		logger.WorkerLog(workerName, "load", err, "media_id", mediaID)
		return err
	}
	if media.Status != models.MediaStatusProcessing {
		return nil
	}

	thumbURL, procErr := w.buildThumbnail(ctx, media)

	status := models.MediaStatusCompleted
	if procErr != nil {
		status = models.MediaStatusFailed
		logger.WorkerLog(workerName, "thumbnail", procErr, "media_id", mediaID)
	}

	if err := w.repo.SetStatus(db, mediaID, status, thumbURL); err != nil {
		logger.WorkerLog(workerName, "set_status", err, "media_id", mediaID)
		return err
	}
	if w.metrics != nil {
		w.metrics.MediaProcessed(string(status))
	}
	logger.WorkerLog(workerName, "process", nil, "media_id", mediaID, "status", string(status))
	return procErr
}

func (w *MediaWorker) buildThumbnail(ctx context.Context, media *models.Media) (*string, error) {
	exists, err := w.storage.Exists(ctx, media.Key)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, storage.ErrObjectNotFound
	}
	if !media.IsImage() {
		// видео и прочее хранятся как есть
		return nil, nil
	}

	original, err := w.storage.Open(ctx, media.Key)
	if err != nil {
		return nil, err
	}
	defer original.Close()

	thumb, err := w.processor.Thumbnail(original, imageprocessor.SizeThumbnail)
	if err != nil {
		return nil, err
	}

	key := storage.ThumbnailKey(media.Key)
	if err := w.storage.Save(ctx, key, thumb, "image/jpeg"); err != nil {
		return nil, err
	}
	url := w.storage.URL(key)
	return &url, nil
}

func (w *MediaWorker) reportQueue() {
	if w.metrics != nil {
		w.metrics.SetMediaQueueDepth(len(w.queue))
	}
}
