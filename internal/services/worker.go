package services

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/models"
)

var ErrWorkerStopped = errors.New("scoring worker stopped")

// AnalysisJob is one resume to score against one role.
type AnalysisJob struct {
	FilePath string
	Role     *models.Role
}

// Worker bounds how many scoring pipelines run at once. Each job runs the
// pipeline start to finish on a single goroutine.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	Submit(ctx context.Context, job AnalysisJob) (*models.ScoreReport, error)
}

type jobResult struct {
	report *models.ScoreReport
	err    error
}

type queuedJob struct {
	ctx    context.Context
	job    AnalysisJob
	result chan jobResult
}

type worker struct {
	scorerService ScorerService
	jobQueue      chan queuedJob
	concurrency   int
	wg            sync.WaitGroup
	stopChan      chan struct{}
	stopOnce      sync.Once
	log           *zap.Logger
}

func NewWorker(scorerService ScorerService, concurrency int, log *zap.Logger) Worker {
	if concurrency <= 0 {
		concurrency = 1
	}

	return &worker{
		scorerService: scorerService,
		jobQueue:      make(chan queuedJob),
		concurrency:   concurrency,
		stopChan:      make(chan struct{}),
		log:           log,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	w.log.Info("🚀 Starting scoring workers", zap.Int("concurrency", w.concurrency))

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker. Jobs already running finish first.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		w.log.Info("🛑 Stopping scoring workers...")
		close(w.stopChan)
		w.wg.Wait()
		w.log.Info("✅ Scoring workers stopped")
	})
}

// Submit implements Worker. It blocks until the job is scored, ctx is done,
// or the worker is stopped.
func (w *worker) Submit(ctx context.Context, job AnalysisJob) (*models.ScoreReport, error) {
	queued := queuedJob{
		ctx:    ctx,
		job:    job,
		result: make(chan jobResult, 1),
	}

	select {
	case w.jobQueue <- queued:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-w.stopChan:
		return nil, ErrWorkerStopped
	}

	select {
	case res := <-queued.result:
		return res.report, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			w.log.Debug("worker stopped", zap.Int("worker", workerID))
			return
		case <-ctx.Done():
			w.log.Debug("worker context done", zap.Int("worker", workerID))
			return
		case queued := <-w.jobQueue:
			w.log.Debug("👷 scoring resume", zap.Int("worker", workerID), zap.String("path", queued.job.FilePath))

			report, err := w.scorerService.AnalyzeFile(queued.ctx, queued.job.FilePath, queued.job.Role)
			if err != nil && !errors.Is(err, ErrNoTextExtracted) {
				w.log.Error("❌ scoring failed", zap.Int("worker", workerID), zap.Error(err))
			}

			queued.result <- jobResult{report: report, err: err}
		}
	}
}
