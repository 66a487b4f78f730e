package usecase

import "github.com/m-mizutani/stencil/pkg/domain/model"

type linkDefinition struct {
	applies func(cfg *model.ProjectConfiguration) bool
	link    model.Link
}

func always(*model.ProjectConfiguration) bool { return true }

func selected(feature model.Feature) func(*model.ProjectConfiguration) bool {
	return func(cfg *model.ProjectConfiguration) bool {
		return cfg.Has(feature)
	}
}

var linkDefinitions = []linkDefinition{
	{
		applies: always,
		link:    model.Link{Label: "Laravel documentation", URL: "https://laravel.com/docs"},
	},
	{
		applies: selected(model.FeatureSail),
		link:    model.Link{Label: "Laravel Sail", URL: "https://laravel.com/docs/sail"},
	},
	{
		applies: func(cfg *model.ProjectConfiguration) bool { return cfg.Database != model.DatabaseNone },
		link:    model.Link{Label: "Database: Getting Started", URL: "https://laravel.com/docs/database"},
	},
	{
		applies: func(cfg *model.ProjectConfiguration) bool { return cfg.Queue.IsAsync() },
		link:    model.Link{Label: "Queues", URL: "https://laravel.com/docs/queues"},
	},
	{
		applies: selected(model.FeatureHorizon),
		link:    model.Link{Label: "Laravel Horizon", URL: "https://laravel.com/docs/horizon"},
	},
	{
		applies: selected(model.FeatureScheduler),
		link:    model.Link{Label: "Task Scheduling", URL: "https://laravel.com/docs/scheduling"},
	},
	{
		applies: selected(model.FeatureFrontend),
		link:    model.Link{Label: "Asset Bundling (Vite)", URL: "https://laravel.com/docs/vite"},
	},
	{
		applies: selected(model.FeatureScout),
		link:    model.Link{Label: "Laravel Scout", URL: "https://laravel.com/docs/scout"},
	},
	{
		applies: selected(model.FeatureTelescope),
		link:    model.Link{Label: "Laravel Telescope", URL: "https://laravel.com/docs/telescope"},
	},
}

type linkResolver struct {
	definitions []linkDefinition
}

// NewLinkResolver creates a resolver over the built-in link definitions
func NewLinkResolver() *linkResolver {
	return &linkResolver{definitions: linkDefinitions}
}

// Links returns the links applying to cfg in definition order
func (r *linkResolver) Links(cfg *model.ProjectConfiguration) []*model.Link {
	var links []*model.Link
	for _, def := range r.definitions {
		if def.applies(cfg) {
			link := def.link
			links = append(links, &link)
		}
	}
	return links
}
