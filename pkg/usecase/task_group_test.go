package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/usecase"
)

func applicable(groups []*model.TaskGroup) map[string][]model.Task {
	result := make(map[string][]model.Task)
	for _, g := range groups {
		if !g.IsEmpty() {
			result[g.Title] = g.Tasks
		}
	}
	return result
}

func TestTaskGroupCreator_FromConfiguration(t *testing.T) {
	creator := usecase.NewTaskGroupCreator()

	t.Run("minimal configuration", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{}))
		gt.Equal(t, len(groups), 1)
		gt.Equal(t, groups["Configure environment"], []model.Task{
			model.Shell("cp .env.example .env"),
			model.Shell("php artisan key:generate"),
		})
	})

	t.Run("sqlite database", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{
			Database: model.DatabaseSQLite,
		}))
		gt.Equal(t, groups["Configure database"], []model.Task{
			model.Shell("touch database/database.sqlite"),
			model.Shell("php artisan migrate"),
		})
	})

	t.Run("server database", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{
			Database: model.DatabasePgSQL,
		}))
		tasks := groups["Configure database"]
		gt.A(t, tasks).Length(2)
		gt.False(t, tasks[0].IsShell())
		gt.Equal(t, tasks[1], model.Shell("php artisan migrate"))
	})

	t.Run("queue worker", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{
			Queue: model.QueueDatabase,
		}))
		gt.Equal(t, groups["Configure queue"], []model.Task{model.Shell("php artisan queue:work")})
	})

	t.Run("horizon replaces queue worker", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{
			Queue:    model.QueueRedis,
			Features: []model.Feature{model.FeatureHorizon},
		}))
		gt.Equal(t, groups["Configure queue"], []model.Task{model.Shell("php artisan horizon")})
	})

	t.Run("horizon without async queue", func(t *testing.T) {
		groups := applicable(creator.FromConfiguration(&model.ProjectConfiguration{
			Features: []model.Feature{model.FeatureHorizon},
		}))
		_, ok := groups["Configure queue"]
		gt.False(t, ok)
	})
}

func TestTaskGroupCreator_Order(t *testing.T) {
	creator := usecase.NewTaskGroupCreator()

	cfg := &model.ProjectConfiguration{
		Database: model.DatabaseMySQL,
		Queue:    model.QueueRedis,
		// Input order differs from definition order
		Features: []model.Feature{
			model.FeatureTelescope,
			model.FeatureScout,
			model.FeatureFrontend,
			model.FeatureScheduler,
			model.FeatureSail,
		},
	}

	groups := creator.FromConfiguration(cfg)

	var titles []string
	for _, g := range groups {
		gt.False(t, g.IsEmpty())
		titles = append(titles, g.Title)
	}

	gt.Equal(t, titles, []string{
		"Configure environment",
		"Start Sail",
		"Configure database",
		"Configure queue",
		"Configure scheduler",
		"Build frontend assets",
		"Configure search",
		"Configure Telescope",
	})
}

func TestTaskGroupCreator_Deterministic(t *testing.T) {
	creator := usecase.NewTaskGroupCreator()
	cfg := &model.ProjectConfiguration{
		Database: model.DatabaseSQLite,
		Queue:    model.QueueSQS,
		Features: []model.Feature{model.FeatureScout, model.FeatureSail},
	}

	first := creator.FromConfiguration(cfg)
	for range 10 {
		gt.Equal(t, creator.FromConfiguration(cfg), first)
	}
}
