package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/stencil/pkg/domain/interfaces"
	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
	"github.com/m-mizutani/stencil/pkg/utils/logging"
	"github.com/m-mizutani/stencil/pkg/utils/markdown"
)

const (
	readmeTemplate = "README.md"

	// DefaultInitializationScript is the script shipped with every generated project
	DefaultInitializationScript = "initialize.sh"

	// DefaultInitializerURL is linked from every generated README
	DefaultInitializerURL = "https://github.com/m-mizutani/stencil"
)

type readmeUseCase struct {
	view                 interfaces.ViewRenderer
	taskGroups           *taskGroupCreator
	links                *linkResolver
	initializationScript string
	initializerURL       string
}

// ReadmeOption is a functional option for ReadmeUseCase
type ReadmeOption func(*readmeUseCase)

// WithInitializationScript sets the script name mentioned in the README
func WithInitializationScript(name string) ReadmeOption {
	return func(uc *readmeUseCase) {
		uc.initializationScript = name
	}
}

// WithInitializerURL sets the URL of the initializer linked from the README
func WithInitializerURL(url string) ReadmeOption {
	return func(uc *readmeUseCase) {
		uc.initializerURL = url
	}
}

// NewReadme creates a new instance of ReadmeUseCase
func NewReadme(view interfaces.ViewRenderer, opts ...ReadmeOption) interfaces.ReadmeUseCase {
	uc := &readmeUseCase{
		view:                 view,
		taskGroups:           NewTaskGroupCreator(),
		links:                NewLinkResolver(),
		initializationScript: DefaultInitializationScript,
		initializerURL:       DefaultInitializerURL,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Generate derives task groups and links from cfg and renders the README
func (uc *readmeUseCase) Generate(ctx context.Context, cfg *model.ProjectConfiguration) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	groups := uc.taskGroups.FromConfiguration(cfg)
	links := uc.links.Links(cfg)

	logging.From(ctx).Debug("Generating README",
		"project", cfg.Metadata.FullName(),
		"task_groups", len(groups),
		"links", len(links),
	)

	return uc.Render(ctx, groups, links, cfg.Metadata, uc.initializationScript, uc.initializerURL)
}

// Render composes the README text
func (uc *readmeUseCase) Render(ctx context.Context, groups []*model.TaskGroup, links []*model.Link, meta model.Metadata, script, initializerURL string) (string, error) {
	if links == nil {
		links = []*model.Link{}
	}
	if script == "" {
		script = uc.initializationScript
	}
	if initializerURL == "" {
		initializerURL = uc.initializerURL
	}

	out, err := uc.view.Render(readmeTemplate, map[string]any{
		"title":                meta.FullName(),
		"description":          meta.Description,
		"todos":                RenderTodos(groups),
		"links":                links,
		"initializerUrl":       initializerURL,
		"initializationScript": script,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to render README",
			goerr.V("project", meta.FullName()),
			goerr.T(types.ErrTagRender),
		)
	}

	return out, nil
}

// RenderTodos renders applicable task groups as markdown. Nil groups and
// groups without task are skipped; no group yields an empty string.
func RenderTodos(groups []*model.TaskGroup) string {
	var rendered []string
	for _, group := range groups {
		if group.IsEmpty() {
			continue
		}

		rendered = append(rendered, strings.Join([]string{
			markdown.Bold(group.Title),
			markdown.IndentLines(renderTasks(group.Tasks), 2),
		}, "\n"))
	}

	return strings.Join(rendered, "\n\n")
}

func renderTasks(tasks []model.Task) string {
	if len(tasks) == 1 {
		if !tasks[0].IsShell() {
			return tasks[0].Text
		}
		return markdown.CodeBlock(tasks[0].Text, "shell")
	}

	items := make([]string, 0, len(tasks))
	for _, task := range tasks {
		text := task.Text
		if task.IsShell() {
			text = markdown.Code(text)
		}
		items = append(items, markdown.ListItem(text))
	}
	return strings.Join(items, "\n")
}
