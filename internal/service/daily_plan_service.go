package service

import (
	"context"
	"fmt"
	"time"

	"github.com/limbo/wordbook/internal/repository"
	"github.com/limbo/wordbook/pkg/entity"
)

type DailyPlanService struct {
	plans repository.DailyPlansRepositoryI
	words repository.WordsRepositoryI
}

func NewDailyPlanService(plansRepo repository.DailyPlansRepositoryI, wordsRepo repository.WordsRepositoryI) *DailyPlanService {
	return &DailyPlanService{
		plans: plansRepo,
		words: wordsRepo,
	}
}

func (ds *DailyPlanService) List(ctx context.Context, userID int64) ([]*entity.DailyPlan, error) {
	plans, err := ds.plans.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing daily plans error: %w", err)
	}
	return plans, nil
}

func (ds *DailyPlanService) Get(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error) {
	plan, err := ds.plans.Find(ctx, userID, book)
	if err != nil {
		return nil, fmt.Errorf("searching daily plan for %q error: %w", book, err)
	}
	return plan, nil
}

func (ds *DailyPlanService) Create(ctx context.Context, userID int64, book string, req *CreateDailyPlanRequest) (*entity.DailyPlan, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	plan, err := ds.plans.Create(ctx, userID, book, &entity.NewDailyPlan{DailyGoal: req.DailyGoal})
	if err != nil {
		return nil, fmt.Errorf("creating daily plan for %q error: %w", book, err)
	}
	return plan, nil
}

func (ds *DailyPlanService) Update(ctx context.Context, userID int64, book string, patch *entity.DailyPlanPatch) (*entity.DailyPlan, error) {
	if patch == nil {
		patch = &entity.DailyPlanPatch{}
	}
	if err := validateStruct(patch); err != nil {
		return nil, err
	}
	plan, err := ds.plans.Update(ctx, userID, book, patch)
	if err != nil {
		return nil, fmt.Errorf("updating daily plan for %q error: %w", book, err)
	}
	return plan, nil
}

func (ds *DailyPlanService) Delete(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error) {
	plan, err := ds.plans.Delete(ctx, userID, book)
	if err != nil {
		return nil, fmt.Errorf("deleting daily plan for %q error: %w", book, err)
	}
	return plan, nil
}

// TodayWord returns the word at position progress of the book. Its
// translation is only shown once the daily goal is reached.
func (ds *DailyPlanService) TodayWord(ctx context.Context, userID int64, book string) (*entity.DailyWord, error) {
	plan, err := ds.plans.Find(ctx, userID, book)
	if err != nil {
		return nil, fmt.Errorf("searching daily plan for %q error: %w", book, err)
	}
	word, err := ds.words.FindByOrder(ctx, entity.BookByID(plan.BookID), plan.Progress)
	if err != nil {
		return nil, fmt.Errorf("searching word %d of %q error: %w", plan.Progress, book, err)
	}
	daily := &entity.DailyWord{
		IsSubmitted: plan.IsSubmitted,
		BookID:      word.BookID,
		WordID:      word.WordID,
		Spelling:    word.Spelling,
	}
	if plan.IsSubmitted {
		daily.Translation = word.Translation
	}
	return daily, nil
}

func (ds *DailyPlanService) SubmitWord(ctx context.Context, userID int64, book string) (*entity.DailyPlan, error) {
	plan, err := ds.plans.AdvanceProgress(ctx, userID, book)
	if err != nil {
		return nil, fmt.Errorf("submitting word for %q error: %w", book, err)
	}
	return plan, nil
}

func (ds *DailyPlanService) Evaluations(ctx context.Context, userID int64, book string) ([]*entity.DailyPlanEvaluation, error) {
	evaluations, err := ds.plans.Evaluations(ctx, userID, book)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations for %q error: %w", book, err)
	}
	return evaluations, nil
}

func (ds *DailyPlanService) EvaluateDay(ctx context.Context, day time.Time) (int64, error) {
	n, err := ds.plans.EvaluateDay(ctx, day)
	if err != nil {
		return 0, fmt.Errorf("evaluating daily plans error: %w", err)
	}
	return n, nil
}
