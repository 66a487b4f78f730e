package usecase_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/usecase"
)

func linkLabels(links []*model.Link) []string {
	labels := make([]string, 0, len(links))
	for _, l := range links {
		labels = append(labels, l.Label)
	}
	return labels
}

func TestLinkResolver_Links(t *testing.T) {
	resolver := usecase.NewLinkResolver()

	tests := []struct {
		name string
		cfg  *model.ProjectConfiguration
		want []string
	}{
		{
			name: "documentation only",
			cfg:  &model.ProjectConfiguration{},
			want: []string{"Laravel documentation"},
		},
		{
			name: "queue only",
			cfg:  &model.ProjectConfiguration{Queue: model.QueueBeanstalkd},
			want: []string{"Laravel documentation", "Queues"},
		},
		{
			name: "definition order regardless of input order",
			cfg: &model.ProjectConfiguration{
				Database: model.DatabaseSQLite,
				Queue:    model.QueueRedis,
				Features: []model.Feature{model.FeatureTelescope, model.FeatureHorizon, model.FeatureSail},
			},
			want: []string{
				"Laravel documentation",
				"Laravel Sail",
				"Database: Getting Started",
				"Queues",
				"Laravel Horizon",
				"Laravel Telescope",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.Equal(t, linkLabels(resolver.Links(tt.cfg)), tt.want)
		})
	}
}

func TestLinkResolver_Deterministic(t *testing.T) {
	resolver := usecase.NewLinkResolver()
	cfg := &model.ProjectConfiguration{Features: []model.Feature{model.FeatureScout}}

	first := resolver.Links(cfg)
	gt.Equal(t, resolver.Links(cfg), first)
	gt.Equal(t, first[1].URL, "https://laravel.com/docs/scout")
}
