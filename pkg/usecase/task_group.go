package usecase

import (
	"github.com/m-mizutani/stencil/pkg/domain/model"
)

// taskGroupDefinition builds the complete task list of a group from the
// configuration. A definition returning no task marks the group as not
// applicable.
type taskGroupDefinition struct {
	title string
	tasks func(cfg *model.ProjectConfiguration) []model.Task
}

// taskGroupDefinitions is evaluated in order; the order of this list is the
// order of the generated checklist.
var taskGroupDefinitions = []taskGroupDefinition{
	{
		title: "Configure environment",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			return []model.Task{
				model.Shell("cp .env.example .env"),
				model.Shell("php artisan key:generate"),
			}
		},
	},
	{
		title: "Start Sail",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			if !cfg.Has(model.FeatureSail) {
				return nil
			}
			return []model.Task{
				model.Shell("./vendor/bin/sail up -d"),
			}
		},
	},
	{
		title: "Configure database",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			switch {
			case cfg.Database == model.DatabaseSQLite:
				return []model.Task{
					model.Shell("touch database/database.sqlite"),
					model.Shell("php artisan migrate"),
				}
			case cfg.Database.IsServer():
				return []model.Task{
					model.Label("Set DB_HOST, DB_DATABASE, DB_USERNAME and DB_PASSWORD in .env"),
					model.Shell("php artisan migrate"),
				}
			default:
				return nil
			}
		},
	},
	{
		title: "Configure queue",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			switch {
			case !cfg.Queue.IsAsync():
				return nil
			case cfg.Has(model.FeatureHorizon):
				return []model.Task{model.Shell("php artisan horizon")}
			default:
				return []model.Task{model.Shell("php artisan queue:work")}
			}
		},
	},
	{
		title: "Configure scheduler",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			if !cfg.Has(model.FeatureScheduler) {
				return nil
			}
			return []model.Task{
				model.Label("Add the scheduler to the crontab of your server"),
				model.Shell("* * * * * cd /path-to-your-project && php artisan schedule:run >> /dev/null 2>&1"),
			}
		},
	},
	{
		title: "Build frontend assets",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			if !cfg.Has(model.FeatureFrontend) {
				return nil
			}
			return []model.Task{
				model.Shell("npm install"),
				model.Shell("npm run build"),
			}
		},
	},
	{
		title: "Configure search",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			if !cfg.Has(model.FeatureScout) {
				return nil
			}
			return []model.Task{
				model.Label("Set SCOUT_DRIVER and the search engine credentials in .env"),
				model.Shell("php artisan scout:sync-index-settings"),
			}
		},
	},
	{
		title: "Configure Telescope",
		tasks: func(cfg *model.ProjectConfiguration) []model.Task {
			if !cfg.Has(model.FeatureTelescope) {
				return nil
			}
			return []model.Task{
				model.Shell("php artisan telescope:install"),
				model.Shell("php artisan migrate"),
			}
		},
	},
}

type taskGroupCreator struct {
	definitions []taskGroupDefinition
}

// NewTaskGroupCreator creates a creator over the built-in group definitions
func NewTaskGroupCreator() *taskGroupCreator {
	return &taskGroupCreator{definitions: taskGroupDefinitions}
}

// FromConfiguration returns one group per definition, in definition order.
// Groups that do not apply are returned with no task.
func (c *taskGroupCreator) FromConfiguration(cfg *model.ProjectConfiguration) []*model.TaskGroup {
	groups := make([]*model.TaskGroup, 0, len(c.definitions))
	for _, def := range c.definitions {
		groups = append(groups, &model.TaskGroup{
			Title: def.title,
			Tasks: def.tasks(cfg),
		})
	}
	return groups
}
