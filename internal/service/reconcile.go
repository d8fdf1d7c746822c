package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/domain"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/geoedge"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/policy"
	"github.com/edugauravkumar-afk/resetgeoEdge-sub000/internal/report"
)

// Options controls one reconciliation run.
type Options struct {
	LookbackDays int
	Workers      int
	DryRun       bool
	// AllProjects widens active accounts from the lookback window to
	// every project they own. Frozen accounts always get all projects.
	AllProjects bool
	// AllRemote builds the candidate set from the remote project
	// listing instead of the inventory.
	AllRemote bool
	// AccountIDs overrides the candidate account set. Empty means every
	// account the inventory knows about.
	AccountIDs []string
}

// Reconciler drives one diff-and-act pass over the candidate projects.
type Reconciler struct {
	statuses  StatusSource
	inventory ProjectInventory
	client    ConfigClient
	baseline  BaselineStore
	reporter  Reporter
	evaluator *policy.Evaluator
	logger    *slog.Logger
	opts      Options
}

func NewReconciler(
	statuses StatusSource,
	inventory ProjectInventory,
	client ConfigClient,
	baseline BaselineStore,
	reporter Reporter,
	evaluator *policy.Evaluator,
	logger *slog.Logger,
	opts Options,
) *Reconciler {
	if opts.Workers <= 0 {
		opts.Workers = 8
	}
	return &Reconciler{
		statuses:  statuses,
		inventory: inventory,
		client:    client,
		baseline:  baseline,
		reporter:  reporter,
		evaluator: evaluator,
		logger:    logger,
		opts:      opts,
	}
}

// Run executes a complete reconciliation pass and returns the run
// report. Per-project failures never abort the run; only the up-front
// reads (account list, statuses, candidate queries) are fatal.
func (r *Reconciler) Run(ctx context.Context) (*domain.RunReport, error) {
	startedAt := time.Now()

	accountIDs := r.opts.AccountIDs
	if len(accountIDs) == 0 {
		var err error
		accountIDs, err = r.inventory.ConfiguredAccountIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list configured accounts: %w", err)
		}
	}

	statuses, err := r.statuses.Statuses(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("fetch account statuses: %w", err)
	}

	var frozen, active []string
	for _, id := range accountIDs {
		if statuses[id].IsFrozen() {
			frozen = append(frozen, id)
		} else {
			active = append(active, id)
		}
	}

	r.logger.Info("starting reconciliation",
		"accounts", len(accountIDs),
		"frozen", len(frozen),
		"active", len(active),
		"dry_run", r.opts.DryRun,
	)

	candidates, err := r.buildCandidates(ctx, frozen, active)
	if err != nil {
		return nil, err
	}

	r.logger.Info("candidate projects selected", "count", len(candidates))

	outcomes := r.processCandidates(ctx, candidates, statuses)

	base := r.baseline.Load()
	newlyFrozen := base.NewlyFrozen(currentStatuses(accountIDs, statuses))

	rep := &domain.RunReport{
		StartedAt:       startedAt,
		DryRun:          r.opts.DryRun,
		AccountsChecked: len(accountIDs),
		FrozenAccounts:  len(frozen),
		ActiveAccounts:  len(active),
		NewlyFrozen:     newlyFrozen,
		Stats:           report.Aggregate(outcomes, time.Since(startedAt)),
		Outcomes:        outcomes,
		FailureList:     report.Failures(outcomes),
	}

	if r.reporter != nil {
		if err := r.reporter.Publish(ctx, rep); err != nil {
			r.logger.Warn("report delivery failed", "error", err)
		}
	}

	if !r.opts.DryRun {
		if err := r.baseline.Save(currentStatuses(accountIDs, statuses)); err != nil {
			r.logger.Warn("baseline refresh failed", "error", err)
		}
	}

	r.logger.Info("reconciliation completed",
		"processed", rep.Stats.Processed,
		"reset", rep.Stats.Reset,
		"already_correct", rep.Stats.AlreadyCorrect,
		"failures", rep.Stats.Failures,
		"newly_frozen", len(newlyFrozen),
		"duration", rep.Stats.Duration,
	)

	return rep, nil
}

// buildCandidates assembles the project set: every project of every
// frozen account, plus the recent projects of active accounts. Frozen
// entries win the dedupe so their account context is kept.
func (r *Reconciler) buildCandidates(ctx context.Context, frozen, active []string) ([]domain.Project, error) {
	if r.opts.AllRemote {
		return r.remoteCandidates(ctx)
	}

	var candidates []domain.Project
	seen := make(map[string]struct{})

	if len(frozen) > 0 {
		projects, err := r.inventory.ProjectsFor(ctx, frozen, true, 0)
		if err != nil {
			return nil, fmt.Errorf("fetch frozen account projects: %w", err)
		}
		for _, p := range projects {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	if len(active) > 0 {
		projects, err := r.inventory.ProjectsFor(ctx, active, r.opts.AllProjects, r.opts.LookbackDays)
		if err != nil {
			return nil, fmt.Errorf("fetch active account projects: %w", err)
		}
		for _, p := range projects {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			candidates = append(candidates, p)
		}
	}

	return candidates, nil
}

// remoteCandidates enumerates every project the remote API knows about
// and resolves owners through the inventory. Remote projects the
// inventory cannot place keep an empty account id, which evaluates as
// unknown status and is left untouched.
func (r *Reconciler) remoteCandidates(ctx context.Context) ([]domain.Project, error) {
	var ids []string
	cursor := ""
	for {
		items, next, err := r.client.List(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("list remote projects: %w", err)
		}
		for _, item := range items {
			ids = append(ids, item.ID)
		}
		// An API that echoes the current cursor back as next_page would
		// otherwise never terminate the walk.
		if next == "" || next == cursor {
			break
		}
		cursor = next
	}

	known, err := r.inventory.ProjectsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve remote projects: %w", err)
	}

	byID := make(map[string]domain.Project, len(known))
	for _, p := range known {
		byID[p.ID] = p
	}

	candidates := make([]domain.Project, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			candidates = append(candidates, p)
			continue
		}
		candidates = append(candidates, domain.Project{ID: id, Line: domain.LineStandard})
	}

	return candidates, nil
}

// processCandidates runs the per-project state machine under a bounded
// worker pool. Each project is handled by exactly one worker; outcomes
// land in a mutex-guarded slice. A cancelled context stops scheduling
// new projects but lets in-flight workers drain, so no project is left
// half-updated without verification.
func (r *Reconciler) processCandidates(ctx context.Context, candidates []domain.Project, statuses map[string]domain.StatusLabel) []domain.Outcome {
	sem := make(chan struct{}, r.opts.Workers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	outcomes := make([]domain.Outcome, 0, len(candidates))

	// Once a project is handed to a worker it runs on a detached
	// context: an accepted update must always reach its verify read,
	// even while the run is shutting down. Each remote call is still
	// bounded by the client's own timeout. Cancellation is honored only
	// in the scheduling loop below.
	runCtx := context.WithoutCancel(ctx)

	for i, candidate := range candidates {
		if ctx.Err() != nil {
			r.logger.Warn("run cancelled, not scheduling remaining projects",
				"remaining", len(candidates)-i)
			break
		}

		wg.Add(1)
		go func(p domain.Project) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			status, ok := statuses[p.AccountID]
			if !ok {
				status = domain.StatusUnknown
			}

			outcome := r.reconcileProject(runCtx, p, status)

			mu.Lock()
			outcomes = append(outcomes, outcome)
			mu.Unlock()
		}(candidate)
	}

	wg.Wait()
	return outcomes
}

// reconcileProject walks one project through fetch, decide, update and
// verify, ending in exactly one classification.
func (r *Reconciler) reconcileProject(ctx context.Context, p domain.Project, status domain.StatusLabel) domain.Outcome {
	outcome := domain.Outcome{
		ProjectID:     p.ID,
		AccountID:     p.AccountID,
		CampaignID:    p.CampaignID,
		AccountFrozen: status.IsFrozen(),
	}

	current, err := r.client.GetConfig(ctx, p.ID)
	if err != nil {
		outcome.Classification = domain.OutcomeFetchError
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.PriorConfig = &current

	desired, required := r.evaluator.Evaluate(status, current, p.Line)
	if !required {
		outcome.Classification = domain.OutcomeAlreadyCorrect
		outcome.FinalConfig = &current
		outcome.Detail = current.String()
		return outcome
	}

	r.logger.Debug("project needs correction",
		"project_id", p.ID,
		"account_id", p.AccountID,
		"account_status", status,
		"current", current.String(),
		"desired", desired.String(),
	)

	if r.opts.DryRun {
		outcome.Classification = domain.OutcomeDryRun
		outcome.Detail = fmt.Sprintf("would change from %s to %s", current, desired)
		return outcome
	}

	if err := r.client.SetConfig(ctx, p.ID, desired); err != nil {
		var apiErr *geoedge.APIError
		if errors.As(err, &apiErr) {
			outcome.Classification = domain.OutcomeAPIRejected
		} else {
			outcome.Classification = domain.OutcomeUpdateError
		}
		outcome.Detail = err.Error()
		return outcome
	}

	refreshed, err := r.client.GetConfig(ctx, p.ID)
	if err != nil {
		outcome.Classification = domain.OutcomeVerifyError
		outcome.Detail = err.Error()
		return outcome
	}
	outcome.FinalConfig = &refreshed

	if refreshed == desired {
		outcome.Classification = domain.OutcomeReset
	} else {
		outcome.Classification = domain.OutcomePartial
	}
	outcome.Detail = refreshed.String()

	return outcome
}

// currentStatuses fills in unknown for every requested id the source
// omitted, so the snapshot covers the full account set.
func currentStatuses(accountIDs []string, statuses map[string]domain.StatusLabel) map[string]domain.StatusLabel {
	out := make(map[string]domain.StatusLabel, len(accountIDs))
	for _, id := range accountIDs {
		if label, ok := statuses[id]; ok {
			out[id] = label
		} else {
			out[id] = domain.StatusUnknown
		}
	}
	return out
}
