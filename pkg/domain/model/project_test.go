package model_test

import (
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/stencil/pkg/domain/model"
	"github.com/m-mizutani/stencil/pkg/domain/types"
)

func TestProjectConfiguration_Validate(t *testing.T) {
	meta := model.Metadata{Vendor: "acme", Project: "shop"}

	tests := []struct {
		name    string
		cfg     model.ProjectConfiguration
		wantErr bool
	}{
		{
			name: "minimal",
			cfg:  model.ProjectConfiguration{Metadata: meta},
		},
		{
			name: "full",
			cfg: model.ProjectConfiguration{
				Metadata: meta,
				Database: model.DatabasePgSQL,
				Queue:    model.QueueRedis,
				Features: model.Features,
			},
		},
		{
			name:    "missing vendor",
			cfg:     model.ProjectConfiguration{Metadata: model.Metadata{Project: "shop"}},
			wantErr: true,
		},
		{
			name:    "missing project",
			cfg:     model.ProjectConfiguration{Metadata: model.Metadata{Vendor: "acme"}},
			wantErr: true,
		},
		{
			name:    "unknown database",
			cfg:     model.ProjectConfiguration{Metadata: meta, Database: "oracle"},
			wantErr: true,
		},
		{
			name:    "unknown queue",
			cfg:     model.ProjectConfiguration{Metadata: meta, Queue: "kafka"},
			wantErr: true,
		},
		{
			name:    "unknown feature",
			cfg:     model.ProjectConfiguration{Metadata: meta, Features: []model.Feature{"octane"}},
			wantErr: true,
		},
		{
			name: "horizon without redis",
			cfg: model.ProjectConfiguration{
				Metadata: meta,
				Queue:    model.QueueDatabase,
				Features: []model.Feature{model.FeatureHorizon},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !tt.wantErr {
				gt.NoError(t, err)
				return
			}
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, types.ErrTagInvalidArgument))
		})
	}
}

func TestProjectConfiguration_Has(t *testing.T) {
	cfg := &model.ProjectConfiguration{Features: []model.Feature{model.FeatureSail}}
	gt.True(t, cfg.Has(model.FeatureSail))
	gt.False(t, cfg.Has(model.FeatureScout))
}

func TestMetadata_FullName(t *testing.T) {
	gt.Equal(t, model.Metadata{Vendor: "acme", Project: "shop"}.FullName(), "acme/shop")
}

func TestDatabase_IsServer(t *testing.T) {
	gt.False(t, model.DatabaseNone.IsServer())
	gt.False(t, model.DatabaseSQLite.IsServer())
	gt.True(t, model.DatabaseMySQL.IsServer())
}

func TestTaskGroup_IsEmpty(t *testing.T) {
	var nilGroup *model.TaskGroup
	gt.True(t, nilGroup.IsEmpty())
	gt.True(t, (&model.TaskGroup{Title: "Configure database"}).IsEmpty())
	gt.False(t, (&model.TaskGroup{Title: "Configure queue", Tasks: []model.Task{model.Shell("php artisan queue:work")}}).IsEmpty())
}
