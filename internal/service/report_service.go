package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"tasks-webapi/internal/model"
)

// TaskLister lists the tasks filed under a category, open ones first.
type TaskLister interface {
	ListTasksByCategory(ctx context.Context, categoryID uuid.UUID) ([]model.Task, error)
}

// CategoryUsage pairs a category with its task count and open tasks.
type CategoryUsage struct {
	Category  model.Category
	TaskCount int64
	OpenTasks []model.Task
}

// ReportService builds human-readable category summaries.
type ReportService struct {
	categories *CategoryService
	tasks      TaskLister
}

func NewReportService(categories *CategoryService, tasks TaskLister) *ReportService {
	return &ReportService{categories: categories, tasks: tasks}
}

// Usage returns every category with its related tasks, heaviest categories
// first and ties broken by name.
func (s *ReportService) Usage(ctx context.Context) ([]CategoryUsage, error) {
	categories, err := s.categories.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].Weight != categories[j].Weight {
			return categories[i].Weight > categories[j].Weight
		}
		return strings.ToLower(categories[i].Name) < strings.ToLower(categories[j].Name)
	})

	usage := make([]CategoryUsage, 0, len(categories))
	for _, category := range categories {
		count, err := s.categories.CountRelatedTasks(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		tasks, err := s.tasks.ListTasksByCategory(ctx, category.ID)
		if err != nil {
			return nil, err
		}
		var open []model.Task
		for _, task := range tasks {
			if !task.IsCompleted {
				open = append(open, task)
			}
		}
		usage = append(usage, CategoryUsage{Category: category, TaskCount: count, OpenTasks: open})
	}
	return usage, nil
}

// CategorySummary renders Usage as plain text. Deadlines before now are
// flagged as overdue.
func (s *ReportService) CategorySummary(ctx context.Context, now time.Time) (string, error) {
	usage, err := s.Usage(ctx)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Category summary %s\n", now.Format("2006-01-02 15:04")))

	if len(usage) == 0 {
		builder.WriteString("- no categories\n")
		return strings.TrimSpace(builder.String()), nil
	}

	var total int64
	for _, u := range usage {
		builder.WriteString(formatUsage(u, now))
		total += u.TaskCount
	}
	builder.WriteString(fmt.Sprintf("\n%d categories, %d tasks", len(usage), total))

	return strings.TrimSpace(builder.String()), nil
}

func formatUsage(u CategoryUsage, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("- %s: %s", strings.TrimSpace(u.Category.Name), pluralTasks(u.TaskCount)))
	if u.Category.Weight != 0 {
		sb.WriteString(fmt.Sprintf(" (weight %d)", u.Category.Weight))
	}
	if desc := strings.TrimSpace(u.Category.Description); desc != "" {
		sb.WriteString(fmt.Sprintf("\n  %s", desc))
	}
	for _, task := range u.OpenTasks {
		sb.WriteString("\n  [ ] ")
		sb.WriteString(strings.TrimSpace(task.Title))
		if task.Deadline != nil {
			d := task.Deadline.In(now.Location())
			if now.After(d) {
				sb.WriteString(fmt.Sprintf(" (overdue since %s)", d.Format("2006-01-02")))
			} else {
				sb.WriteString(fmt.Sprintf(" (due %s)", d.Format("2006-01-02")))
			}
		}
	}

	sb.WriteByte('\n')
	return sb.String()
}

func pluralTasks(n int64) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}
